// Package store provides the ticket Store Port implementations. The schema
// and all persistence concerns live here; the service layer only sees the
// port interface.
package store

import (
	"context"
	"sync"

	"ticketd/internal/ticket/models"
	"ticketd/pkg/platform/sentinel"
)

// InMemory is the map-backed ticket store used in tests and dev mode. It
// provides the same last-write-wins semantics as the postgres store: no
// per-ticket serialization beyond the lock around each call.
type InMemory struct {
	mu      sync.RWMutex
	tickets map[int64]models.Ticket
	nextID  int64
}

func NewInMemory() *InMemory {
	return &InMemory{tickets: make(map[int64]models.Ticket), nextID: 1}
}

// Save inserts or replaces. A zero ID means insert: the store assigns the
// identity. The returned ticket is a detached copy.
func (s *InMemory) Save(_ context.Context, t *models.Ticket) (*models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := cloneTicket(t)
	if saved.ID == 0 {
		saved.ID = s.nextID
		s.nextID++
	} else if saved.ID >= s.nextID {
		s.nextID = saved.ID + 1
	}
	s.tickets[saved.ID] = *saved
	return cloneTicket(saved), nil
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tickets[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return cloneTicket(&t), nil
}

func (s *InMemory) ExistsByID(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tickets[id]
	return ok, nil
}

func (s *InMemory) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tickets[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.tickets, id)
	return nil
}

func (s *InMemory) DeleteByComment(_ context.Context, comment string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, t := range s.tickets {
		if t.Comment == comment {
			delete(s.tickets, id)
			removed++
		}
	}
	return removed, nil
}

// FindFirstWithEvent returns the ticket with the numerically smallest linked
// event identifier among tickets that reference an event.
func (s *InMemory) FindFirstWithEvent(_ context.Context) (*models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best *models.Ticket
	for id := range s.tickets {
		t := s.tickets[id]
		if t.EventID == nil {
			continue
		}
		if best == nil || *t.EventID < *best.EventID ||
			(*t.EventID == *best.EventID && t.ID < best.ID) {
			best = cloneTicket(&t)
		}
	}
	if best == nil {
		return nil, sentinel.ErrNotFound
	}
	return best, nil
}

func (s *InMemory) CountCommentLessThan(_ context.Context, comment string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, t := range s.tickets {
		if t.Comment < comment {
			count++
		}
	}
	return count, nil
}

func (s *InMemory) FindAll(_ context.Context) ([]models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]models.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		all = append(all, *cloneTicket(&t))
	}
	return all, nil
}

// cloneTicket detaches a ticket from store-internal state, including its
// embedded coordinates and reference ids.
func cloneTicket(t *models.Ticket) *models.Ticket {
	copy := *t
	if t.Coordinates != nil {
		c := *t.Coordinates
		copy.Coordinates = &c
	}
	copy.PersonID = cloneID(t.PersonID)
	copy.VenueID = cloneID(t.VenueID)
	copy.EventID = cloneID(t.EventID)
	return &copy
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
