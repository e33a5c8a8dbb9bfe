package stream

import (
	"sync"

	"github.com/google/uuid"

	streammetrics "ticketd/internal/stream/metrics"
)

// Registry is the mutation-safe set of subscriber handles. Attach, detach and
// fan-out race freely: iteration works on a snapshot taken under a read lock,
// so in-flight sends never hold the registry against concurrent mutation.
type Registry struct {
	mu      sync.RWMutex
	subs    map[uuid.UUID]*Subscriber
	metrics *streammetrics.Metrics
}

func NewRegistry(metrics *streammetrics.Metrics) *Registry {
	return &Registry{
		subs:    make(map[uuid.UUID]*Subscriber),
		metrics: metrics,
	}
}

// Attach creates a new subscriber and delivers the synthetic connected
// acknowledgment before the handle can see any broadcast traffic, so a client
// can distinguish "subscribed" from "missed events".
func (r *Registry) Attach() *Subscriber {
	sub := newSubscriber()
	sub.events <- Event{Action: ActionConnected}

	r.mu.Lock()
	r.subs[sub.id] = sub
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.SubscriberAttached()
	}
	return sub
}

// Detach removes the handle permanently and closes it. Safe to call more
// than once; later calls are no-ops.
func (r *Registry) Detach(sub *Subscriber) {
	r.mu.Lock()
	_, present := r.subs[sub.id]
	delete(r.subs, sub.id)
	r.mu.Unlock()

	sub.close()
	if present && r.metrics != nil {
		r.metrics.SubscriberDetached()
	}
}

// Snapshot copies the current subscriber set for lock-free iteration.
func (r *Registry) Snapshot() []*Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subs := make([]*Subscriber, 0, len(r.subs))
	for _, sub := range r.subs {
		subs = append(subs, sub)
	}
	return subs
}

// Len reports the number of attached subscribers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}
