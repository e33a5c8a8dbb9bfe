package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketd/internal/directory/models"
	"ticketd/internal/directory/store"
	"ticketd/pkg/async"
	"ticketd/pkg/derrors"
)

func newService() (*Service, *store.InMemory) {
	st := store.NewInMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(st, async.NewPool(4), logger), st
}

func validPerson() *models.Person {
	return &models.Person{
		HairColor:  "black",
		Weight:     72,
		PassportID: "AB1234",
		Location:   &models.Location{X: 1, Y: 2, Z: 3},
	}
}

func TestService_Persons(t *testing.T) {
	ctx := context.Background()

	t.Run("add assigns identity and list returns it", func(t *testing.T) {
		svc, _ := newService()

		saved, err := svc.AddPerson(ctx, validPerson()).Wait(ctx)
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)

		persons, err := svc.ListPersons(ctx).Wait(ctx)
		require.NoError(t, err)
		require.Len(t, persons, 1)
		assert.Equal(t, saved.ID, persons[0].ID)
	})

	t.Run("empty list is a slice, not nil", func(t *testing.T) {
		svc, _ := newService()

		persons, err := svc.ListPersons(ctx).Wait(ctx)
		require.NoError(t, err)
		assert.NotNil(t, persons)
		assert.Empty(t, persons)
	})

	t.Run("validation rejects bad persons", func(t *testing.T) {
		svc, _ := newService()

		for _, mutate := range []func(*models.Person){
			func(p *models.Person) { p.Weight = 0 },
			func(p *models.Person) { p.PassportID = "  " },
			func(p *models.Person) { p.Location = nil },
		} {
			p := validPerson()
			mutate(p)
			_, err := svc.AddPerson(ctx, p).Wait(ctx)
			require.Error(t, err)
			assert.True(t, derrors.HasCode(err, derrors.CodeBadRequest))
		}
	})

	t.Run("exists by id resolves buyers", func(t *testing.T) {
		svc, _ := newService()
		saved, err := svc.AddPerson(ctx, validPerson()).Wait(ctx)
		require.NoError(t, err)

		ok, err := svc.ExistsByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.ExistsByID(ctx, 404)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestService_Venues(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.AddVenue(ctx, &models.Venue{Name: "arena", Capacity: 0}).Wait(ctx)
	require.Error(t, err)
	assert.True(t, derrors.HasCode(err, derrors.CodeBadRequest))

	saved, err := svc.AddVenue(ctx, &models.Venue{Name: "arena", Capacity: 5000, Type: "open"}).Wait(ctx)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	venues, err := svc.ListVenues(ctx).Wait(ctx)
	require.NoError(t, err)
	assert.Len(t, venues, 1)
}

func TestService_Events(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.AddEvent(ctx, &models.Event{Name: " ", TicketsCount: 10}).Wait(ctx)
	require.Error(t, err)
	assert.True(t, derrors.HasCode(err, derrors.CodeBadRequest))

	saved, err := svc.AddEvent(ctx, &models.Event{Name: "finals", TicketsCount: 10}).Wait(ctx)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	events, err := svc.ListEvents(ctx).Wait(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
