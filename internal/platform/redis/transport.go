package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"assurance/pkg/platform/rpc"
)

const (
	keyPrefix = "rpc:"
	// pollTimeout bounds each BRPOP so Subscribe notices cancellation.
	pollTimeout = time.Second
	// replyTTL expires reply lists whose client went away.
	replyTTL = time.Hour
)

// Transport carries envelopes over Redis lists: publishers LPUSH, consumers
// BRPOP, so concurrent consumers of one channel compete for envelopes.
type Transport struct {
	rdb    redis.UniversalClient
	logger *slog.Logger
	closed atomic.Bool
}

// NewTransport builds a list-backed transport over rdb.
func NewTransport(rdb redis.UniversalClient, logger *slog.Logger) *Transport {
	return &Transport{rdb: rdb, logger: logger}
}

func listKey(channel string) string {
	return keyPrefix + channel
}

// Publish appends env to the channel's list. Reply lists get a TTL.
func (t *Transport) Publish(ctx context.Context, channel string, env rpc.Envelope) error {
	if t.closed.Load() {
		return rpc.ErrTransportClosed
	}
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}
	key := listKey(channel)
	if !env.IsReply() {
		return t.rdb.LPush(ctx, key, body).Err()
	}
	_, err = t.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, body)
		pipe.Expire(ctx, key, replyTTL)
		return nil
	})
	return err
}

// Subscribe pops envelopes from the channel's list until ctx is done.
func (t *Transport) Subscribe(ctx context.Context, channel string, deliver rpc.DeliverFunc) error {
	key := listKey(channel)
	for {
		if ctx.Err() != nil || t.closed.Load() {
			return nil
		}
		res, err := t.rdb.BRPop(ctx, pollTimeout, key).Result()
		switch {
		case errors.Is(err, redis.Nil):
			continue
		case err != nil:
			if ctx.Err() != nil || errors.Is(err, redis.ErrClosed) {
				return nil
			}
			t.logger.WarnContext(ctx, "redis pop failed",
				"channel", channel,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(pollTimeout):
			}
			continue
		}
		// res is [key, value]
		if len(res) != 2 {
			continue
		}
		var env rpc.Envelope
		if err := json.Unmarshal([]byte(res[1]), &env); err != nil {
			t.logger.ErrorContext(ctx, "dropping undecodable envelope",
				"channel", channel,
				"error", err,
			)
			continue
		}
		deliver(ctx, env)
	}
}

// ReleaseChannel deletes the channel's list.
func (t *Transport) ReleaseChannel(ctx context.Context, channel string) error {
	return t.rdb.Del(ctx, listKey(channel)).Err()
}

// Close stops subscriptions at their next poll. The Redis client is owned by
// the caller.
func (t *Transport) Close() error {
	t.closed.Store(true)
	return nil
}
