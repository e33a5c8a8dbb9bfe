package service

import (
	"context"
	"strings"

	"ticketd/internal/stream"
	"ticketd/internal/ticket/models"
	"ticketd/pkg/async"
	"ticketd/pkg/derrors"
)

// List returns all tickets. A store failure degrades to an empty result: the
// read path favors availability over precise error reporting.
func (s *Service) List(ctx context.Context) *async.Task[[]models.Ticket] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) ([]models.Ticket, error) {
		tickets, err := s.tickets.FindAll(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "ticket list degraded to empty result", "error", err)
			return []models.Ticket{}, nil
		}
		if tickets == nil {
			tickets = []models.Ticket{}
		}
		return tickets, nil
	})
}

// Add persists a new ticket and returns it with its assigned identity.
func (s *Service) Add(ctx context.Context, t *models.Ticket) *async.Task[*models.Ticket] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) (*models.Ticket, error) {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = s.now()
		}
		t.ID = 0
		saved, err := s.tickets.Save(ctx, t)
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeInternal, "could not save ticket")
		}
		s.publish(ctx, stream.ActionAdded, &saved.ID)
		s.incrementCreated()
		return saved, nil
	})
}

// Get fetches one ticket. Any store error is reported as not found.
func (s *Service) Get(ctx context.Context, id int64) *async.Task[*models.Ticket] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) (*models.Ticket, error) {
		t, err := s.tickets.FindByID(ctx, id)
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeNotFound, "ticket not found")
		}
		return t, nil
	})
}

// Update replaces the ticket stored under id. There is no upsert: a missing
// id fails the operation.
func (s *Service) Update(ctx context.Context, id int64, t *models.Ticket) *async.Task[*models.Ticket] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) (*models.Ticket, error) {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		exists, err := s.tickets.ExistsByID(ctx, id)
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeInternal, "could not update ticket")
		}
		if !exists {
			return nil, derrors.New(derrors.CodeNotFound, "ticket not found")
		}
		t.ID = id
		saved, err := s.tickets.Save(ctx, t)
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeInternal, "could not update ticket")
		}
		s.publish(ctx, stream.ActionUpdated, &id)
		return saved, nil
	})
}

// Remove deletes the ticket stored under id.
func (s *Service) Remove(ctx context.Context, id int64) *async.Task[struct{}] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) (struct{}, error) {
		exists, err := s.tickets.ExistsByID(ctx, id)
		if err != nil {
			return struct{}{}, derrors.Wrap(err, derrors.CodeInternal, "could not delete ticket")
		}
		if !exists {
			return struct{}{}, derrors.New(derrors.CodeNotFound, "ticket not found")
		}
		if err := s.tickets.DeleteByID(ctx, id); err != nil {
			return struct{}{}, derrors.Wrap(err, derrors.CodeInternal, "could not delete ticket")
		}
		s.publish(ctx, stream.ActionDeleted, &id)
		return struct{}{}, nil
	})
}

// DeleteAllByComment removes every ticket whose comment equals the trimmed
// predicate and returns the count. An empty predicate is rejected before the
// store is touched, so a blank input can never mass-delete. Zero matches is a
// failure, mirroring the delete-by-id contract.
func (s *Service) DeleteAllByComment(ctx context.Context, comment string) *async.Task[int64] {
	trimmed := strings.TrimSpace(comment)
	if trimmed == "" {
		return async.Resolved[int64](0, derrors.New(derrors.CodeBadRequest, "comment predicate must not be empty"))
	}
	return async.Submit(ctx, s.pool, func(ctx context.Context) (int64, error) {
		removed, err := s.tickets.DeleteByComment(ctx, trimmed)
		if err != nil {
			return 0, derrors.Wrap(err, derrors.CodeInternal, "could not delete tickets by comment")
		}
		if removed == 0 {
			return 0, derrors.New(derrors.CodeNotFound, "no tickets matched the comment")
		}
		s.publish(ctx, stream.ActionBulkDeleted, nil)
		return removed, nil
	})
}

// WithEarliestEvent returns the ticket whose linked event has the smallest
// identifier, among tickets that reference an event at all.
func (s *Service) WithEarliestEvent(ctx context.Context) *async.Task[*models.Ticket] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) (*models.Ticket, error) {
		t, err := s.tickets.FindFirstWithEvent(ctx)
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeNotFound, "no ticket with a linked event")
		}
		return t, nil
	})
}

// CountCommentLessThan counts tickets whose comment sorts strictly before the
// given string. Store failures degrade to a zero count.
func (s *Service) CountCommentLessThan(ctx context.Context, comment string) *async.Task[int64] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) (int64, error) {
		count, err := s.tickets.CountCommentLessThan(ctx, comment)
		if err != nil {
			s.logger.WarnContext(ctx, "comment count degraded to zero", "error", err)
			return 0, nil
		}
		return count, nil
	})
}

// Sell transfers the ticket to the buyer at the given amount. The amount must
// be strictly positive and both the ticket and the person must exist. All
// reads happen before the single save, so a failure anywhere leaves the
// ticket untouched.
func (s *Service) Sell(ctx context.Context, ticketID, personID int64, amount float64) *async.Task[*models.Ticket] {
	if amount <= 0 {
		return async.Resolved[*models.Ticket](nil, derrors.New(derrors.CodeBadRequest, "sale amount must be positive"))
	}
	return async.Submit(ctx, s.pool, func(ctx context.Context) (*models.Ticket, error) {
		t, err := s.tickets.FindByID(ctx, ticketID)
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeNotFound, "ticket not found")
		}
		ok, err := s.persons.ExistsByID(ctx, personID)
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeInternal, "could not resolve buyer")
		}
		if !ok {
			return nil, derrors.New(derrors.CodeNotFound, "person not found")
		}
		t.Price = amount
		t.PersonID = &personID
		saved, err := s.tickets.Save(ctx, t)
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeInternal, "could not sell ticket")
		}
		s.publish(ctx, stream.ActionSold, &ticketID)
		s.incrementSold()
		return saved, nil
	})
}

// ClonePremium duplicates the source ticket as a premium variant: fresh
// identity, creation time reset, references copied, coordinates deep-copied,
// price doubled. One read, one write.
func (s *Service) ClonePremium(ctx context.Context, ticketID int64) *async.Task[*models.Ticket] {
	return async.Submit(ctx, s.pool, func(ctx context.Context) (*models.Ticket, error) {
		src, err := s.tickets.FindByID(ctx, ticketID)
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeNotFound, "ticket not found")
		}
		saved, err := s.tickets.Save(ctx, src.ClonePremium(s.now()))
		if err != nil {
			return nil, derrors.Wrap(err, derrors.CodeInternal, "could not clone ticket")
		}
		s.publish(ctx, stream.ActionCloned, &saved.ID)
		s.incrementCloned()
		return saved, nil
	})
}

func (s *Service) incrementCreated() {
	if s.metrics != nil {
		s.metrics.IncrementTicketsCreated()
	}
}

func (s *Service) incrementSold() {
	if s.metrics != nil {
		s.metrics.IncrementTicketsSold()
	}
}

func (s *Service) incrementCloned() {
	if s.metrics != nil {
		s.metrics.IncrementPremiumClones()
	}
}
