package stream

import (
	"context"
	"log/slog"

	streammetrics "ticketd/internal/stream/metrics"
)

// Bridge carries events between instances. When configured, published events
// round-trip through the bridge and come back via Deliver, so every instance
// sees every event exactly once.
type Bridge interface {
	Publish(ctx context.Context, e Event) error
}

// Broadcaster fans completed-mutation events out to every attached
// subscriber. Delivery is best-effort and non-blocking: a slow or dead
// subscriber is detached, never waited on.
type Broadcaster struct {
	registry *Registry
	bridge   Bridge
	logger   *slog.Logger
	metrics  *streammetrics.Metrics
}

type BroadcasterOption func(*Broadcaster)

// WithBridge routes published events through a cross-instance bridge.
func WithBridge(bridge Bridge) BroadcasterOption {
	return func(b *Broadcaster) { b.bridge = bridge }
}

// WithMetrics attaches prometheus metrics; nil-safe when omitted.
func WithMetrics(m *streammetrics.Metrics) BroadcasterOption {
	return func(b *Broadcaster) { b.metrics = m }
}

func NewBroadcaster(registry *Registry, logger *slog.Logger, opts ...BroadcasterOption) *Broadcaster {
	b := &Broadcaster{registry: registry, logger: logger}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish emits one event for a completed mutation. With a bridge configured
// the event is handed to it and delivered locally when it comes back; a
// bridge failure falls back to direct local delivery so subscribers on this
// instance still hear about the change.
func (b *Broadcaster) Publish(ctx context.Context, action Action, id *int64) {
	e := Event{Action: action, ID: id}
	if b.bridge != nil {
		err := b.bridge.Publish(ctx, e)
		if err == nil {
			return
		}
		b.logger.WarnContext(ctx, "bridge publish failed, delivering locally", "error", err, "action", action)
	}
	b.Deliver(ctx, e)
}

// Deliver fans one event out to a snapshot of the current subscribers.
// Subscribers whose send fails are detached immediately.
func (b *Broadcaster) Deliver(ctx context.Context, e Event) {
	for _, sub := range b.registry.Snapshot() {
		if err := sub.send(e); err != nil {
			b.registry.Detach(sub)
			if b.metrics != nil {
				b.metrics.SubscriberDropped()
			}
			b.logger.DebugContext(ctx, "detached dead subscriber", "subscriber_id", sub.ID())
		}
	}
	if b.metrics != nil {
		b.metrics.EventBroadcast()
	}
}
