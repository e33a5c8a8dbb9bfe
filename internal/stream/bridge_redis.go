package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Channel is the Redis pub/sub channel change events travel on.
const Channel = "ticketd:changes"

// RedisBridge shares one change stream between instances over Redis pub/sub.
// Each instance publishes to the channel and delivers whatever arrives on it,
// including its own messages.
type RedisBridge struct {
	client      *redis.Client
	broadcaster *Broadcaster
	logger      *slog.Logger
}

func NewRedisBridge(client *redis.Client, logger *slog.Logger) *RedisBridge {
	return &RedisBridge{client: client, logger: logger}
}

// Bind wires the broadcaster the bridge delivers inbound events to. Called
// once during startup; the broadcaster and bridge reference each other, so
// construction happens in two steps.
func (b *RedisBridge) Bind(broadcaster *Broadcaster) {
	b.broadcaster = broadcaster
}

// Publish sends the event to the shared channel.
func (b *RedisBridge) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}
	if err := b.client.Publish(ctx, Channel, payload).Err(); err != nil {
		return fmt.Errorf("publish change event: %w", err)
	}
	return nil
}

// Run subscribes to the shared channel and delivers inbound events locally
// until ctx is done. Malformed payloads are logged and skipped.
func (b *RedisBridge) Run(ctx context.Context) error {
	sub := b.client.Subscribe(ctx, Channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return fmt.Errorf("redis subscription closed")
			}
			var e Event
			if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
				b.logger.WarnContext(ctx, "dropping malformed change event", "error", err)
				continue
			}
			b.broadcaster.Deliver(ctx, e)
		}
	}
}
