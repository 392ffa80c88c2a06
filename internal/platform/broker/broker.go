// Package broker opens the command channel transport selected by configuration.
package broker

import (
	"context"
	"fmt"
	"log/slog"

	"assurance/internal/platform/config"
	"assurance/internal/platform/kafka"
	platformredis "assurance/internal/platform/redis"
	"assurance/pkg/platform/rpc"
	"assurance/pkg/platform/rpc/memtransport"
)

// Broker is an open transport plus whatever must be released with it.
type Broker struct {
	rpc.Transport
	Kind string

	release func() error
}

// Close closes the transport and its underlying connections.
func (b *Broker) Close() error {
	err := b.Transport.Close()
	if b.release != nil {
		if rerr := b.release(); err == nil {
			err = rerr
		}
	}
	return err
}

// ReleaseChannel passes through to the transport when it keeps per-channel
// state, so clients built on a Broker still clean up their reply channel.
func (b *Broker) ReleaseChannel(ctx context.Context, channel string) error {
	if releaser, ok := b.Transport.(rpc.ChannelReleaser); ok {
		return releaser.ReleaseChannel(ctx, channel)
	}
	return nil
}

// Open connects the configured transport. For Kafka the given channels are
// created when missing.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger, channels ...string) (*Broker, error) {
	switch cfg.Broker.Kind {
	case config.BrokerMemory, "":
		logger.Warn("using in-process broker; commands never leave this process")
		return &Broker{Transport: memtransport.New(), Kind: config.BrokerMemory}, nil

	case config.BrokerKafka:
		tr, err := kafka.NewTransport(kafka.Config{
			Brokers:     cfg.Broker.KafkaBrokerList(),
			GroupPrefix: cfg.Broker.KafkaGroupPrefix,
			Partitions:  int32(cfg.Broker.KafkaPartitions),
		}, logger)
		if err != nil {
			return nil, err
		}
		if err := tr.Ping(ctx); err != nil {
			_ = tr.Close()
			return nil, fmt.Errorf("kafka ping failed: %w", err)
		}
		if len(channels) > 0 {
			if err := tr.EnsureChannels(ctx, channels...); err != nil {
				_ = tr.Close()
				return nil, err
			}
		}
		return &Broker{Transport: tr, Kind: config.BrokerKafka}, nil

	case config.BrokerRedis:
		client, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, fmt.Errorf("redis broker selected but REDIS_URL is empty")
		}
		return &Broker{
			Transport: platformredis.NewTransport(client.Client, logger),
			Kind:      config.BrokerRedis,
			release:   client.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown broker kind %q", cfg.Broker.Kind)
	}
}
