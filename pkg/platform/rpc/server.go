package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	dErrors "assurance/pkg/domain-errors"
	"assurance/pkg/platform/sentinel"
)

// HandlerFunc handles one command. Returning (nil, nil), or an error matching
// sentinel.ErrNotFound, replies with a null payload.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

const defaultConcurrency = 16

// Server consumes a command channel and replies to each request.
type Server struct {
	transport   Transport
	channel     string
	logger      *slog.Logger
	metrics     *Metrics
	tracer      trace.Tracer
	concurrency int

	handlers map[string]HandlerFunc
}

// ServerOption customises a Server.
type ServerOption func(*Server)

// WithConcurrency bounds how many commands are handled at once.
func WithConcurrency(n int) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithServerMetrics records handled commands on m.
func WithServerMetrics(m *Metrics) ServerOption {
	return func(s *Server) { s.metrics = m }
}

// NewServer builds a server for channel. Register handlers before Run.
func NewServer(transport Transport, channel string, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		transport:   transport,
		channel:     channel,
		logger:      logger,
		tracer:      otel.Tracer(tracerName),
		concurrency: defaultConcurrency,
		handlers:    make(map[string]HandlerFunc),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle registers h for command, replacing any earlier registration.
func (s *Server) Handle(command string, h HandlerFunc) {
	s.handlers[command] = h
}

// Commands lists registered command names.
func (s *Server) Commands() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Channel returns the consumed command channel.
func (s *Server) Channel() string { return s.channel }

// Run consumes the command channel until ctx is done, then waits for
// in-flight handlers.
func (s *Server) Run(ctx context.Context) error {
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup
	defer wg.Wait()

	return s.transport.Subscribe(ctx, s.channel, func(ctx context.Context, env Envelope) {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return
		}
		wg.Add(1)
		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()
			s.serve(ctx, env)
		}()
	})
}

func (s *Server) serve(ctx context.Context, env Envelope) {
	ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(env.Headers))
	ctx, span := s.tracer.Start(ctx, "rpc.handle "+env.Command,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("rpc.channel", s.channel),
			attribute.String("rpc.command", env.Command),
		),
	)
	defer span.End()

	start := time.Now()
	reply := Envelope{
		ID:            uuid.NewString(),
		CorrelationID: env.ID,
		Command:       env.Command,
		SentAt:        time.Now().UTC(),
	}

	outcome := OutcomeOK
	if h, ok := s.handlers[env.Command]; !ok {
		reply.Error = &RemoteError{Code: RemoteCodeUnknownCommand, Message: "unknown command " + env.Command}
	} else {
		result, err := s.invoke(ctx, h, env)
		switch {
		case err != nil:
			reply.Error = remoteErrorFor(err)
		case result != nil:
			body, mErr := json.Marshal(result)
			if mErr != nil {
				reply.Error = &RemoteError{Code: RemoteCodeInternal, Message: "encode reply: " + mErr.Error()}
				break
			}
			reply.Payload = body
		default:
			reply.Payload = nullPayload
		}
	}
	if reply.Error != nil {
		outcome = OutcomeRejected
		span.SetStatus(codes.Error, reply.Error.Code)
		s.logger.WarnContext(ctx, "command failed",
			"channel", s.channel,
			"command", env.Command,
			"code", reply.Error.Code,
			"error", reply.Error.Message,
		)
	}
	s.metrics.observeHandled(s.channel, env.Command, outcome)

	if env.ReplyTo == "" {
		return
	}
	if err := s.transport.Publish(ctx, env.ReplyTo, reply); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish reply",
			"channel", s.channel,
			"command", env.Command,
			"reply_to", env.ReplyTo,
			"error", err,
		)
		return
	}
	s.logger.DebugContext(ctx, "command handled",
		"channel", s.channel,
		"command", env.Command,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// invoke runs h, converting not-found errors into a null result and a panic
// into an internal remote error.
func (s *Server) invoke(ctx context.Context, h HandlerFunc, env Envelope) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "command handler panicked",
				"command", env.Command,
				"panic", r,
			)
			result, err = nil, dErrors.New(dErrors.CodeInternal, "internal error")
		}
	}()
	result, err = h(ctx, env.Payload)
	if err != nil && hasCode(err, dErrors.CodeNotFound, sentinel.ErrNotFound) {
		return nil, nil
	}
	return result, err
}

func remoteErrorFor(err error) *RemoteError {
	switch {
	case hasCode(err, dErrors.CodeConflict, sentinel.ErrConflict):
		return &RemoteError{Code: RemoteCodeConflict, Message: err.Error()}
	case dErrors.CodeOf(err) == dErrors.CodeInternal:
		return &RemoteError{Code: RemoteCodeInternal, Message: err.Error()}
	default:
		return &RemoteError{Code: RemoteCodeRejected, Message: err.Error()}
	}
}

// hasCode reports whether the outermost coded error carries code. Uncoded
// errors are matched against the sentinel instead.
func hasCode(err error, code dErrors.Code, fallback error) bool {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return errors.Is(err, fallback)
}
