package rpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcomes recorded by the client.
const (
	OutcomeOK        = "ok"
	OutcomeRejected  = "rejected"
	OutcomeTimeout   = "timeout"
	OutcomeCancelled = "cancelled"
	OutcomeTransport = "transport_error"
)

// Metrics holds RPC client and server instruments. A nil *Metrics records nothing.
type Metrics struct {
	calls       *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	handled     *prometheus.CounterVec
	lateReplies *prometheus.CounterVec
}

// NewMetrics registers the RPC instruments on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		calls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "assurance_rpc_client_calls_total",
			Help: "Commands sent by RPC clients, by outcome",
		}, []string{"channel", "command", "outcome"}),
		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "assurance_rpc_client_call_duration_seconds",
			Help:    "Time from publish to correlated reply or failure",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"channel", "command"}),
		handled: f.NewCounterVec(prometheus.CounterOpts{
			Name: "assurance_rpc_server_commands_total",
			Help: "Commands handled by RPC servers, by outcome",
		}, []string{"channel", "command", "outcome"}),
		lateReplies: f.NewCounterVec(prometheus.CounterOpts{
			Name: "assurance_rpc_client_late_replies_total",
			Help: "Replies received after their call was abandoned",
		}, []string{"channel"}),
	}
}

func (m *Metrics) observeCall(channel, command, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(channel, command, outcome).Inc()
	m.latency.WithLabelValues(channel, command).Observe(elapsed.Seconds())
}

func (m *Metrics) observeHandled(channel, command, outcome string) {
	if m == nil {
		return
	}
	m.handled.WithLabelValues(channel, command, outcome).Inc()
}

func (m *Metrics) incLateReply(channel string) {
	if m == nil {
		return
	}
	m.lateReplies.WithLabelValues(channel).Inc()
}
