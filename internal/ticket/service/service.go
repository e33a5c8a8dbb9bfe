// Package service implements the ticket domain operations. Every operation is
// scheduled on the shared worker pool and returns a Task the transport layer
// awaits; the store call is the only suspension point inside an operation.
package service

import (
	"context"
	"log/slog"
	"time"

	"ticketd/internal/stream"
	ticketmetrics "ticketd/internal/ticket/metrics"
	"ticketd/internal/ticket/models"
	"ticketd/pkg/async"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Store is the persistence port for tickets. Save assigns the identity when
// the ticket has none. Implementations return sentinel.ErrNotFound when the
// target row does not exist; bulk operations report a match count instead.
type Store interface {
	Save(ctx context.Context, t *models.Ticket) (*models.Ticket, error)
	FindByID(ctx context.Context, id int64) (*models.Ticket, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByComment(ctx context.Context, comment string) (int64, error)
	FindFirstWithEvent(ctx context.Context) (*models.Ticket, error)
	CountCommentLessThan(ctx context.Context, comment string) (int64, error)
	FindAll(ctx context.Context) ([]models.Ticket, error)
}

// PersonDirectory resolves person references during a sale. The directory
// owns person lifecycle; the ticket service only checks existence.
type PersonDirectory interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// Changes receives one event per successful write operation. Delivery must
// never block or fail the originating write.
type Changes interface {
	Publish(ctx context.Context, action stream.Action, id *int64)
}

// Service orchestrates the ticket lifecycle.
type Service struct {
	tickets Store
	persons PersonDirectory
	changes Changes
	pool    *async.Pool
	logger  *slog.Logger
	metrics *ticketmetrics.Metrics
	now     func() time.Time
}

type Option func(*Service)

// WithMetrics attaches prometheus counters; nil-safe when omitted.
func WithMetrics(m *ticketmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides the creation-time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(tickets Store, persons PersonDirectory, changes Changes, pool *async.Pool, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		tickets: tickets,
		persons: persons,
		changes: changes,
		pool:    pool,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) publish(ctx context.Context, action stream.Action, id *int64) {
	if s.changes != nil {
		s.changes.Publish(ctx, action, id)
	}
}
