package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// envelope is the wire form on the Redis channel. Origin lets an instance
// skip its own messages, which it already delivered locally.
type envelope struct {
	Origin string             `json:"origin"`
	Event  domain.ChangeEvent `json:"event"`
}

// RedisBus shares one change feed between instances. Publish delivers to
// local subscribers right away and forwards to Redis; Start relays events
// published by other instances into the local bus.
type RedisBus struct {
	local   *LocalBus
	rdb     *redis.Client
	channel string
	origin  string
	log     *slog.Logger
}

// RedisOptions configures NewRedisBus.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// NewRedisBus connects to Redis and verifies the connection with PING.
func NewRedisBus(ctx context.Context, log *slog.Logger, local *LocalBus, opts RedisOptions) (*RedisBus, error) {
	if opts.Channel == "" {
		opts.Channel = "dealflow:changes"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisBus{
		local:   local,
		rdb:     rdb,
		channel: opts.Channel,
		origin:  uuid.NewString(),
		log:     log.With("component", "redis_bus"),
	}, nil
}

// Publish delivers ev locally, then forwards it to other instances. A Redis
// failure is returned after local delivery has happened.
func (b *RedisBus) Publish(ctx context.Context, ev domain.ChangeEvent) error {
	if err := b.local.Publish(ctx, ev); err != nil {
		return err
	}

	raw, err := json.Marshal(envelope{Origin: b.origin, Event: ev})
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}
	if err := b.rdb.Publish(ctx, b.channel, raw).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Subscribe subscribes to the local bus, which sees both local and remote
// events.
func (b *RedisBus) Subscribe() (<-chan domain.ChangeEvent, func()) {
	return b.local.Subscribe()
}

// Local returns the wrapped in-process bus.
func (b *RedisBus) Local() *LocalBus {
	return b.local
}

// Start subscribes to the Redis channel and relays remote events until ctx
// is canceled. It returns once the subscription is confirmed.
func (b *RedisBus) Start(ctx context.Context) error {
	sub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					return
				}
				b.relay(ctx, m.Payload)
			}
		}
	}()

	b.log.Info("redis change relay started", slog.String("channel", b.channel))
	return nil
}

func (b *RedisBus) relay(ctx context.Context, payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		b.log.Warn("bad redis change payload", slog.String("error", err.Error()))
		return
	}
	if env.Origin == b.origin {
		return
	}
	if err := b.local.Publish(ctx, env.Event); err != nil {
		b.log.Warn("relay change event", slog.String("error", err.Error()))
	}
}

// Ping checks the Redis connection.
func (b *RedisBus) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}

// Close closes the Redis client.
func (b *RedisBus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}
