//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"ticketd/internal/ticket/models"
	"ticketd/internal/ticket/store"
	"ticketd/pkg/platform/sentinel"
	"ticketd/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
	ctx      context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(s.ctx))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(s.ctx, "tickets"))
}

func (s *PostgresStoreSuite) newTicket(comment string) *models.Ticket {
	return &models.Ticket{
		Name:        "row 4 seat 2",
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
		Coordinates: &models.Coordinates{X: 3, Y: 1.5},
		Price:       25,
		Comment:     comment,
		Category:    models.CategoryOrdinary,
	}
}

func (s *PostgresStoreSuite) TestInsertAndFind() {
	saved, err := s.store.Save(s.ctx, s.newTicket("by the door"))
	s.Require().NoError(err)
	s.NotZero(saved.ID)

	found, err := s.store.FindByID(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.Equal(saved.Name, found.Name)
	s.Equal(saved.Comment, found.Comment)
	s.Require().NotNil(found.Coordinates)
	s.Equal(int64(3), found.Coordinates.X)
	s.Nil(found.PersonID)
}

func (s *PostgresStoreSuite) TestReplace() {
	saved, err := s.store.Save(s.ctx, s.newTicket(""))
	s.Require().NoError(err)

	saved.Name = "renamed"
	_, err = s.store.Save(s.ctx, saved)
	s.Require().NoError(err)

	found, err := s.store.FindByID(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.Equal("renamed", found.Name)

	ghost := s.newTicket("")
	ghost.ID = 404
	_, err = s.store.Save(s.ctx, ghost)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDeletes() {
	saved, err := s.store.Save(s.ctx, s.newTicket("stale"))
	s.Require().NoError(err)
	_, err = s.store.Save(s.ctx, s.newTicket("stale"))
	s.Require().NoError(err)
	_, err = s.store.Save(s.ctx, s.newTicket("fresh"))
	s.Require().NoError(err)

	s.Require().NoError(s.store.DeleteByID(s.ctx, saved.ID))
	s.ErrorIs(s.store.DeleteByID(s.ctx, saved.ID), sentinel.ErrNotFound)

	removed, err := s.store.DeleteByComment(s.ctx, "stale")
	s.Require().NoError(err)
	s.Equal(int64(1), removed)

	all, err := s.store.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *PostgresStoreSuite) TestFindFirstWithEvent() {
	_, err := s.store.FindFirstWithEvent(s.ctx)
	s.ErrorIs(err, sentinel.ErrNotFound)

	late, early := int64(30), int64(4)
	a := s.newTicket("")
	a.EventID = &late
	_, err = s.store.Save(s.ctx, a)
	s.Require().NoError(err)
	b := s.newTicket("")
	b.Name = "earliest"
	b.EventID = &early
	_, err = s.store.Save(s.ctx, b)
	s.Require().NoError(err)

	found, err := s.store.FindFirstWithEvent(s.ctx)
	s.Require().NoError(err)
	s.Equal("earliest", found.Name)
}

func (s *PostgresStoreSuite) TestCountCommentLessThan() {
	for _, comment := range []string{"apple", "banana", "cherry"} {
		_, err := s.store.Save(s.ctx, s.newTicket(comment))
		s.Require().NoError(err)
	}

	count, err := s.store.CountCommentLessThan(s.ctx, "banana")
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *PostgresStoreSuite) TestCategoryConstraint() {
	bad := s.newTicket("")
	bad.Category = "mystery"
	_, err := s.store.Save(s.ctx, bad)
	s.Error(err)
}
