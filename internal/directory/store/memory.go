// Package store provides the directory Store Port implementations.
package store

import (
	"context"
	"sync"

	"ticketd/internal/directory/models"
)

// InMemory is the map-backed directory store for tests and dev mode.
type InMemory struct {
	mu      sync.RWMutex
	persons map[int64]models.Person
	venues  map[int64]models.Venue
	events  map[int64]models.Event
	nextID  int64
}

func NewInMemory() *InMemory {
	return &InMemory{
		persons: make(map[int64]models.Person),
		venues:  make(map[int64]models.Venue),
		events:  make(map[int64]models.Event),
		nextID:  1,
	}
}

func (s *InMemory) assignID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *InMemory) SavePerson(_ context.Context, p *models.Person) (*models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := *p
	if saved.Location != nil {
		loc := *p.Location
		saved.Location = &loc
	}
	if saved.ID == 0 {
		saved.ID = s.assignID()
	}
	s.persons[saved.ID] = saved
	out := saved
	return &out, nil
}

func (s *InMemory) FindAllPersons(_ context.Context) ([]models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]models.Person, 0, len(s.persons))
	for _, p := range s.persons {
		all = append(all, p)
	}
	return all, nil
}

func (s *InMemory) PersonExistsByID(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.persons[id]
	return ok, nil
}

func (s *InMemory) SaveVenue(_ context.Context, v *models.Venue) (*models.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := *v
	if saved.ID == 0 {
		saved.ID = s.assignID()
	}
	s.venues[saved.ID] = saved
	out := saved
	return &out, nil
}

func (s *InMemory) FindAllVenues(_ context.Context) ([]models.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]models.Venue, 0, len(s.venues))
	for _, v := range s.venues {
		all = append(all, v)
	}
	return all, nil
}

func (s *InMemory) SaveEvent(_ context.Context, e *models.Event) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := *e
	if saved.ID == 0 {
		saved.ID = s.assignID()
	}
	s.events[saved.ID] = saved
	out := saved
	return &out, nil
}

func (s *InMemory) FindAllEvents(_ context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		all = append(all, e)
	}
	return all, nil
}
