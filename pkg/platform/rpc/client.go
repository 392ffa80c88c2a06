package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultTimeout bounds a call when Options.Timeout is zero.
	DefaultTimeout = 5 * time.Second

	// releaseTimeout bounds removal of the reply channel after Run returns.
	releaseTimeout = 5 * time.Second

	tracerName = "assurance/pkg/platform/rpc"
)

// Caller is what workflow code depends on: one command in, one reply out.
type Caller interface {
	Call(ctx context.Context, command string, payload any) (json.RawMessage, error)
}

// Options configures a Client.
type Options struct {
	// Channel is the downstream service's command channel.
	Channel string
	// ReplyChannel receives this client's replies. It must be private to the
	// client instance; a unique name is generated when empty.
	ReplyChannel string
	// Timeout bounds each call from publish to correlated reply.
	Timeout time.Duration
	Logger  *slog.Logger
	Metrics *Metrics
}

// Client sends commands on one channel and correlates replies. It never
// retries. Run must be active for replies to be received.
type Client struct {
	transport    Transport
	channel      string
	replyChannel string
	timeout      time.Duration
	logger       *slog.Logger
	metrics      *Metrics
	tracer       trace.Tracer

	mu      sync.Mutex
	pending map[string]chan Envelope
}

// NewClient builds a client over transport.
func NewClient(transport Transport, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.ReplyChannel == "" {
		opts.ReplyChannel = ReplyChannelFor(opts.Channel)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		transport:    transport,
		channel:      opts.Channel,
		replyChannel: opts.ReplyChannel,
		timeout:      opts.Timeout,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		tracer:       otel.Tracer(tracerName),
		pending:      make(map[string]chan Envelope),
	}
}

// ReplyChannelFor returns a fresh reply channel name for a command channel.
func ReplyChannelFor(channel string) string {
	return channel + ".reply." + uuid.NewString()
}

// Channel returns the command channel this client targets.
func (c *Client) Channel() string { return c.channel }

// ReplyChannel returns the channel this client consumes replies from.
func (c *Client) ReplyChannel() string { return c.replyChannel }

// Timeout returns the per-call wait bound.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Run consumes the reply channel until ctx is done, then releases it when the
// transport keeps state for it.
func (c *Client) Run(ctx context.Context) error {
	err := c.transport.Subscribe(ctx, c.replyChannel, c.deliver)

	if releaser, ok := c.transport.(ChannelReleaser); ok {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if rerr := releaser.ReleaseChannel(rctx, c.replyChannel); rerr != nil {
			c.logger.WarnContext(rctx, "failed to release reply channel",
				"channel", c.channel,
				"reply_channel", c.replyChannel,
				"error", rerr,
			)
		}
	}
	return err
}

// Call publishes command with payload and waits for its reply.
//
// It returns the raw reply payload, which is null when the remote handler
// found nothing. Failures are ErrTimeout (wrapped), context.Canceled
// (wrapped) when the caller gives up first, *TransportError or *RemoteError.
func (c *Client) Call(ctx context.Context, command string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("rpc: encode %s payload: %w", command, err)
	}

	ctx, span := c.tracer.Start(ctx, "rpc.call "+command,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("rpc.channel", c.channel),
			attribute.String("rpc.command", command),
		),
	)
	defer span.End()

	env := Envelope{
		ID:      uuid.NewString(),
		Command: command,
		ReplyTo: c.replyChannel,
		Payload: body,
		Headers: map[string]string{},
		SentAt:  time.Now().UTC(),
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.MapCarrier(env.Headers))

	reply := c.register(env.ID)
	defer c.unregister(env.ID)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	start := time.Now()

	if err := c.transport.Publish(ctx, c.channel, env); err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return nil, c.fail(span, command, OutcomeTimeout, start, c.timeoutError(command))
		case errors.Is(err, context.Canceled):
			return nil, c.fail(span, command, OutcomeCancelled, start, c.cancelledError(command, err))
		}
		return nil, c.fail(span, command, OutcomeTransport, start,
			&TransportError{Channel: c.channel, Command: command, Err: err})
	}

	select {
	case r := <-reply:
		if r.Error != nil {
			return nil, c.fail(span, command, OutcomeRejected, start, r.Error)
		}
		c.metrics.observeCall(c.channel, command, OutcomeOK, time.Since(start))
		return r.Payload, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, c.fail(span, command, OutcomeTimeout, start, c.timeoutError(command))
		}
		return nil, c.fail(span, command, OutcomeCancelled, start, c.cancelledError(command, ctx.Err()))
	}
}

// cancelledError reports a call abandoned by its caller. The channel may be
// perfectly reachable, so it is not a TransportError.
func (c *Client) cancelledError(command string, err error) error {
	return fmt.Errorf("rpc: %s on %s: %w", command, c.channel, err)
}

func (c *Client) timeoutError(command string) error {
	return fmt.Errorf("%s on %s after %s: %w", command, c.channel, c.timeout, ErrTimeout)
}

func (c *Client) fail(span trace.Span, command, outcome string, start time.Time, err error) error {
	c.metrics.observeCall(c.channel, command, outcome, time.Since(start))
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)
	return err
}

func (c *Client) register(id string) chan Envelope {
	ch := make(chan Envelope, 1)
	c.mu.Lock()
	c.pending[id] = ch
	c.mu.Unlock()
	return ch
}

func (c *Client) unregister(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

func (c *Client) deliver(ctx context.Context, env Envelope) {
	c.mu.Lock()
	ch, ok := c.pending[env.CorrelationID]
	if ok {
		delete(c.pending, env.CorrelationID)
	}
	c.mu.Unlock()

	if !ok {
		c.metrics.incLateReply(c.channel)
		c.logger.WarnContext(ctx, "dropping reply with no waiting call",
			"channel", c.channel,
			"command", env.Command,
			"correlation_id", env.CorrelationID,
		)
		return
	}
	ch <- env
}
