package stream

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// subscriberBuffer is how many events a subscriber may lag behind before it
// is considered dead and detached.
const subscriberBuffer = 16

// ErrSubscriberGone is returned by send when the channel is closed or full.
var ErrSubscriberGone = errors.New("subscriber gone")

// Subscriber is one open notification channel. Its lifecycle is
// attached -> (receiving)* -> detached; detached is terminal and the handle
// is never re-attached.
type Subscriber struct {
	id     uuid.UUID
	events chan Event
	closed chan struct{}
	once   sync.Once
}

func newSubscriber() *Subscriber {
	return &Subscriber{
		id:     uuid.New(),
		events: make(chan Event, subscriberBuffer),
		closed: make(chan struct{}),
	}
}

// ID identifies the handle in the registry.
func (s *Subscriber) ID() uuid.UUID { return s.id }

// Events is the stream the transport drains. It is never closed while the
// subscriber is attached.
func (s *Subscriber) Events() <-chan Event { return s.events }

// Closed signals that the subscriber was detached.
func (s *Subscriber) Closed() <-chan struct{} { return s.closed }

// send delivers without blocking. A full buffer counts as a failed send: a
// slow subscriber must never delay the originating write.
func (s *Subscriber) send(e Event) error {
	select {
	case <-s.closed:
		return ErrSubscriberGone
	default:
	}
	select {
	case s.events <- e:
		return nil
	default:
		return ErrSubscriberGone
	}
}

func (s *Subscriber) close() {
	s.once.Do(func() { close(s.closed) })
}
