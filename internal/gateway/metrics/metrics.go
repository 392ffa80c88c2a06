// Package metrics holds the gateway's orchestration metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels besides error codes.
const (
	OutcomeSuccess = "success"
)

type Metrics struct {
	Orchestrations       *prometheus.CounterVec
	OrchestrationSeconds prometheus.Histogram
	BeneficiariesCreated prometheus.Counter
	BeneficiaryConflicts prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Orchestrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "assurance_gateway_orchestrations_total",
			Help: "Beneficiary-insurance orchestration runs by outcome",
		}, []string{"outcome"}),
		OrchestrationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "assurance_gateway_orchestration_duration_seconds",
			Help:    "Duration of beneficiary-insurance orchestration runs",
			Buckets: prometheus.DefBuckets,
		}),
		BeneficiariesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "assurance_gateway_beneficiaries_created_total",
			Help: "Beneficiaries created on first insurance request",
		}),
		BeneficiaryConflicts: f.NewCounter(prometheus.CounterOpts{
			Name: "assurance_gateway_beneficiary_conflicts_total",
			Help: "Beneficiary creations that lost a race and were re-looked up",
		}),
	}
}

// ObserveOrchestration records one run.
func (m *Metrics) ObserveOrchestration(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Orchestrations.WithLabelValues(outcome).Inc()
	m.OrchestrationSeconds.Observe(elapsed.Seconds())
}

func (m *Metrics) IncBeneficiaryCreated() {
	if m == nil {
		return
	}
	m.BeneficiariesCreated.Inc()
}

func (m *Metrics) IncBeneficiaryConflict() {
	if m == nil {
		return
	}
	m.BeneficiaryConflicts.Inc()
}
