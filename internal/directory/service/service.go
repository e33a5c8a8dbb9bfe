// Package service implements the directory operations: list and add for
// persons, venues and events. Like the ticket service, every operation runs
// on the worker pool and degrades list reads to empty results.
package service

import (
	"context"
	"log/slog"

	"ticketd/internal/directory/models"
	"ticketd/pkg/async"
	"ticketd/pkg/derrors"
)

// Store is the persistence port for directory entities. Save assigns the
// identity when the entity has none. A person's embedded location is saved
// with the person in the same call.
type Store interface {
	SavePerson(ctx context.Context, p *models.Person) (*models.Person, error)
	FindAllPersons(ctx context.Context) ([]models.Person, error)
	PersonExistsByID(ctx context.Context, id int64) (bool, error)

	SaveVenue(ctx context.Context, v *models.Venue) (*models.Venue, error)
	FindAllVenues(ctx context.Context) ([]models.Venue, error)

	SaveEvent(ctx context.Context, e *models.Event) (*models.Event, error)
	FindAllEvents(ctx context.Context) ([]models.Event, error)
}

// Service orchestrates the directory entities.
type Service struct {
	store  Store
	pool   *async.Pool
	logger *slog.Logger
}

func New(store Store, pool *async.Pool, logger *slog.Logger) *Service {
	return &Service{store: store, pool: pool, logger: logger}
}

func (s *Service) ListPersons(ctx context.Context) *async.Task[[]models.Person] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) ([]models.Person, error) {
		persons, err := s.store.FindAllPersons(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "person list degraded to empty result", "error", err)
			return []models.Person{}, nil
		}
		if persons == nil {
			persons = []models.Person{}
		}
		return persons, nil
	})
}

func (s *Service) AddPerson(ctx context.Context, p *models.Person) *async.Task[*models.Person] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) (*models.Person, error) {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		saved, err := s.store.SavePerson(ctx, p)
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeInternal, "could not save person")
		}
		return saved, nil
	})
}

// ExistsByID lets the ticket service resolve buyer references. It runs
// synchronously: it is always called from inside an already-scheduled task.
func (s *Service) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.store.PersonExistsByID(ctx, id)
}

func (s *Service) ListVenues(ctx context.Context) *async.Task[[]models.Venue] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) ([]models.Venue, error) {
		venues, err := s.store.FindAllVenues(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "venue list degraded to empty result", "error", err)
			return []models.Venue{}, nil
		}
		if venues == nil {
			venues = []models.Venue{}
		}
		return venues, nil
	})
}

func (s *Service) AddVenue(ctx context.Context, v *models.Venue) *async.Task[*models.Venue] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) (*models.Venue, error) {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		saved, err := s.store.SaveVenue(ctx, v)
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeInternal, "could not save venue")
		}
		return saved, nil
	})
}

func (s *Service) ListEvents(ctx context.Context) *async.Task[[]models.Event] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) ([]models.Event, error) {
		events, err := s.store.FindAllEvents(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "event list degraded to empty result", "error", err)
			return []models.Event{}, nil
		}
		if events == nil {
			events = []models.Event{}
		}
		return events, nil
	})
}

func (s *Service) AddEvent(ctx context.Context, e *models.Event) *async.Task[*models.Event] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) (*models.Event, error) {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		saved, err := s.store.SaveEvent(ctx, e)
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeInternal, "could not save event")
		}
		return saved, nil
	})
}
