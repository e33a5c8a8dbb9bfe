//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"ticketd/internal/directory/models"
	"ticketd/internal/directory/store"
	"ticketd/pkg/testutil/containers"
)

type DirectoryPostgresSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
	ctx      context.Context
}

func TestDirectoryPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(DirectoryPostgresSuite))
}

func (s *DirectoryPostgresSuite) SetupSuite() {
	s.ctx = context.Background()
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(s.ctx))
}

func (s *DirectoryPostgresSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(s.ctx, "persons", "venues", "events"))
}

func (s *DirectoryPostgresSuite) TestPersons() {
	saved, err := s.store.SavePerson(s.ctx, &models.Person{
		HairColor:  "red",
		Weight:     64,
		PassportID: "CD5678",
		Location:   &models.Location{X: 10, Y: 0.5, Z: -2},
	})
	s.Require().NoError(err)
	s.NotZero(saved.ID)

	ok, err := s.store.PersonExistsByID(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.store.PersonExistsByID(s.ctx, saved.ID+1)
	s.Require().NoError(err)
	s.False(ok)

	persons, err := s.store.FindAllPersons(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(persons, 1)
	s.Require().NotNil(persons[0].Location)
	s.Equal(int64(10), persons[0].Location.X)
}

func (s *DirectoryPostgresSuite) TestPersonConstraints() {
	_, err := s.store.SavePerson(s.ctx, &models.Person{
		Weight:     0,
		PassportID: "EF9012",
		Location:   &models.Location{},
	})
	s.Error(err)
}

func (s *DirectoryPostgresSuite) TestVenues() {
	saved, err := s.store.SaveVenue(s.ctx, &models.Venue{Name: "hall", Capacity: 300, Type: "indoor"})
	s.Require().NoError(err)
	s.NotZero(saved.ID)

	venues, err := s.store.FindAllVenues(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(venues, 1)
	s.Equal("hall", venues[0].Name)
}

func (s *DirectoryPostgresSuite) TestEvents() {
	saved, err := s.store.SaveEvent(s.ctx, &models.Event{Name: "semifinal", TicketsCount: 900})
	s.Require().NoError(err)
	s.NotZero(saved.ID)

	events, err := s.store.FindAllEvents(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(int64(900), events[0].TicketsCount)
}
