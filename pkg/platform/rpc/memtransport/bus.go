// Package memtransport is an in-process rpc.Transport backed by buffered Go
// channels. It is used by tests and by single-process development setups.
package memtransport

import (
	"context"
	"sync"

	"assurance/pkg/platform/rpc"
)

const defaultQueueSize = 256

// Bus holds one buffered queue per channel name. Envelopes published before
// anyone subscribes wait in the queue; concurrent subscribers compete.
type Bus struct {
	mu        sync.Mutex
	queues    map[string]chan rpc.Envelope
	queueSize int
	done      chan struct{}
	closeOnce sync.Once
}

// Option customises a Bus.
type Option func(*Bus)

// WithQueueSize sets the per-channel buffer.
func WithQueueSize(n int) Option {
	return func(b *Bus) {
		if n > 0 {
			b.queueSize = n
		}
	}
}

// New creates an empty bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		queues:    make(map[string]chan rpc.Envelope),
		queueSize: defaultQueueSize,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bus) queue(channel string) chan rpc.Envelope {
	b.mu.Lock()
	defer b.mu.Unlock()
	q, ok := b.queues[channel]
	if !ok {
		q = make(chan rpc.Envelope, b.queueSize)
		b.queues[channel] = q
	}
	return q
}

// Publish enqueues env, blocking while the queue is full.
func (b *Bus) Publish(ctx context.Context, channel string, env rpc.Envelope) error {
	select {
	case <-b.done:
		return rpc.ErrTransportClosed
	default:
	}
	select {
	case b.queue(channel) <- env:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return rpc.ErrTransportClosed
	}
}

// Subscribe delivers envelopes from channel until ctx is done or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context, channel string, deliver rpc.DeliverFunc) error {
	q := b.queue(channel)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-b.done:
			return nil
		case env := <-q:
			deliver(ctx, env)
		}
	}
}

// Pending returns the number of queued envelopes on channel.
func (b *Bus) Pending(channel string) int {
	return len(b.queue(channel))
}

// ReleaseChannel forgets channel and drops anything still queued on it.
func (b *Bus) ReleaseChannel(_ context.Context, channel string) error {
	b.mu.Lock()
	delete(b.queues, channel)
	b.mu.Unlock()
	return nil
}

// Close stops all subscriptions and rejects further publishes.
func (b *Bus) Close() error {
	b.closeOnce.Do(func() { close(b.done) })
	return nil
}
