// Package kafka carries RPC envelopes over Kafka topics with franz-go. Each
// channel is a topic; each subscriber joins a consumer group named after the
// channel, so replicas of a service compete for commands.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"assurance/pkg/platform/rpc"
)

// Config describes the cluster and naming used by Transport.
type Config struct {
	Brokers     []string
	GroupPrefix string
	// Partitions is used by EnsureChannels.
	Partitions int32
}

// Transport implements rpc.Transport on Kafka.
type Transport struct {
	cfg      Config
	logger   *slog.Logger
	producer *kgo.Client

	mu        sync.Mutex
	consumers map[*kgo.Client]struct{}
	closed    bool
}

// NewTransport connects a producer client. Consumers are created per Subscribe.
func NewTransport(cfg Config, logger *slog.Logger) (*Transport, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka transport requires at least one broker")
	}
	producer, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.AllowAutoTopicCreation(),
		kgo.ProducerLinger(0),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return &Transport{
		cfg:       cfg,
		logger:    logger,
		producer:  producer,
		consumers: make(map[*kgo.Client]struct{}),
	}, nil
}

// Ping checks that a broker is reachable.
func (t *Transport) Ping(ctx context.Context) error {
	return t.producer.Ping(ctx)
}

// EnsureChannels creates topics for channels, tolerating ones that exist.
func (t *Transport) EnsureChannels(ctx context.Context, channels ...string) error {
	partitions := t.cfg.Partitions
	if partitions <= 0 {
		partitions = 1
	}
	adm := kadm.NewClient(t.producer)
	resp, err := adm.CreateTopics(ctx, partitions, -1, nil, channels...)
	if err != nil {
		return fmt.Errorf("create topics: %w", err)
	}
	for _, r := range resp.Sorted() {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

// ReleaseChannel deletes the channel's topic and its consumer group. Clients
// call it for their reply channel, which no other process reads.
func (t *Transport) ReleaseChannel(ctx context.Context, channel string) error {
	if t.isClosed() {
		return rpc.ErrTransportClosed
	}
	adm := kadm.NewClient(t.producer)

	topics, err := adm.DeleteTopics(ctx, channel)
	if err != nil {
		return fmt.Errorf("delete topic %s: %w", channel, err)
	}
	for _, r := range topics {
		if r.Err != nil && !errors.Is(r.Err, kerr.UnknownTopicOrPartition) {
			return fmt.Errorf("delete topic %s: %w", r.Topic, r.Err)
		}
	}

	group := t.groupFor(channel)
	groups, err := adm.DeleteGroups(ctx, group)
	if err != nil {
		return fmt.Errorf("delete group %s: %w", group, err)
	}
	for _, r := range groups {
		if r.Err != nil && !errors.Is(r.Err, kerr.GroupIDNotFound) {
			return fmt.Errorf("delete group %s: %w", r.Group, r.Err)
		}
	}
	return nil
}

// Publish produces env to the channel's topic and waits for the broker ack.
func (t *Transport) Publish(ctx context.Context, channel string, env rpc.Envelope) error {
	if t.isClosed() {
		return rpc.ErrTransportClosed
	}
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}
	key := env.CorrelationID
	if key == "" {
		key = env.ID
	}
	return t.producer.ProduceSync(ctx, &kgo.Record{
		Topic: channel,
		Key:   []byte(key),
		Value: body,
	}).FirstErr()
}

// Subscribe consumes the channel's topic until ctx is done or the transport is closed.
func (t *Transport) Subscribe(ctx context.Context, channel string, deliver rpc.DeliverFunc) error {
	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(t.cfg.Brokers...),
		kgo.ConsumerGroup(t.groupFor(channel)),
		kgo.ConsumeTopics(channel),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return fmt.Errorf("kafka consumer %s: %w", channel, err)
	}
	if !t.track(consumer) {
		consumer.Close()
		return rpc.ErrTransportClosed
	}
	defer t.untrack(consumer)

	for {
		fetches := consumer.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return nil
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			t.logger.WarnContext(ctx, "kafka fetch failed",
				"channel", topic,
				"partition", partition,
				"error", err,
			)
		})
		fetches.EachRecord(func(rec *kgo.Record) {
			var env rpc.Envelope
			if err := json.Unmarshal(rec.Value, &env); err != nil {
				t.logger.ErrorContext(ctx, "dropping undecodable envelope",
					"channel", rec.Topic,
					"offset", rec.Offset,
					"error", err,
				)
				return
			}
			deliver(ctx, env)
		})
	}
}

// Close stops every consumer and the producer.
func (t *Transport) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	consumers := make([]*kgo.Client, 0, len(t.consumers))
	for c := range t.consumers {
		consumers = append(consumers, c)
	}
	t.mu.Unlock()

	for _, c := range consumers {
		c.Close()
	}
	t.producer.Close()
	return nil
}

func (t *Transport) groupFor(channel string) string {
	if t.cfg.GroupPrefix == "" {
		return channel
	}
	return t.cfg.GroupPrefix + "." + channel
}

func (t *Transport) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

func (t *Transport) track(c *kgo.Client) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return false
	}
	t.consumers[c] = struct{}{}
	return true
}

func (t *Transport) untrack(c *kgo.Client) {
	t.mu.Lock()
	_, ok := t.consumers[c]
	delete(t.consumers, c)
	t.mu.Unlock()
	if ok {
		c.Close()
	}
}
