// Package publisher emits audit events onto a bounded in-process queue.
// Emit never blocks the caller: when the queue is full the event is dropped
// and counted.
package publisher

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	audit "assurance/pkg/platform/audit"
	"assurance/pkg/requestcontext"
)

const defaultBufferSize = 1024

// Metrics counts emitted and dropped events.
type Metrics struct {
	Emitted *prometheus.CounterVec
	Dropped *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Emitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "assurance_audit_events_emitted_total",
			Help: "Audit events queued for persistence",
		}, []string{"action"}),
		Dropped: f.NewCounterVec(prometheus.CounterOpts{
			Name: "assurance_audit_events_dropped_total",
			Help: "Audit events dropped because the queue was full or closed",
		}, []string{"action"}),
	}
}

// Publisher queues events for a worker.
type Publisher struct {
	mu      sync.RWMutex
	closed  bool
	events  chan audit.Event
	logger  *slog.Logger
	metrics *Metrics
}

type Option func(*Publisher)

func WithBufferSize(n int) Option {
	return func(p *Publisher) {
		if n > 0 {
			p.events = make(chan audit.Event, n)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

func New(opts ...Option) *Publisher {
	p := &Publisher{
		events: make(chan audit.Event, defaultBufferSize),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit queues event, filling the timestamp and request id from ctx when unset.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.drop(ctx, event, "publisher closed")
		return
	}
	select {
	case p.events <- event:
		if p.metrics != nil {
			p.metrics.Emitted.WithLabelValues(string(event.Action)).Inc()
		}
	default:
		p.drop(ctx, event, "queue full")
	}
}

func (p *Publisher) drop(ctx context.Context, event audit.Event, reason string) {
	if p.metrics != nil {
		p.metrics.Dropped.WithLabelValues(string(event.Action)).Inc()
	}
	p.logger.WarnContext(ctx, "audit event dropped",
		"action", event.Action,
		"user_id", event.UserID,
		"request_id", event.RequestID,
		"reason", reason,
	)
}

// Events is drained by the worker. It is closed by Close.
func (p *Publisher) Events() <-chan audit.Event {
	return p.events
}

// Close stops accepting events. Queued events stay readable from Events.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.events)
	}
	return nil
}
