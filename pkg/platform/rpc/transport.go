package rpc

import (
	"context"
	"errors"
)

// DeliverFunc receives envelopes consumed from a channel. Transports call it
// sequentially for one subscription.
type DeliverFunc func(ctx context.Context, env Envelope)

// Transport moves envelopes between named point-to-point channels.
//
// Publish fails when the channel cannot be reached. Subscribe blocks until ctx
// is done or the transport is closed; concurrent subscribers of one channel
// compete for its envelopes.
type Transport interface {
	Publish(ctx context.Context, channel string, env Envelope) error
	Subscribe(ctx context.Context, channel string, deliver DeliverFunc) error
	Close() error
}

// ChannelReleaser is implemented by transports that keep broker-side state
// per channel, such as a topic and its consumer group. Clients release their
// private reply channel when they stop.
type ChannelReleaser interface {
	ReleaseChannel(ctx context.Context, channel string) error
}

// ErrTransportClosed is returned by transports used after Close.
var ErrTransportClosed = errors.New("rpc: transport closed")
