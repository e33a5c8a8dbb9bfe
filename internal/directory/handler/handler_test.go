package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketd/internal/directory/models"
	"ticketd/internal/directory/service"
	"ticketd/internal/directory/store"
	"ticketd/pkg/async"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(store.NewInMemory(), async.NewPool(4), logger)

	router := chi.NewRouter()
	New(svc, logger).Register(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandler_PersonRoutes(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv, "/add_person", models.Person{
		HairColor:  "brown",
		Weight:     80,
		PassportID: "XY9876",
		Location:   &models.Location{X: 4, Z: 5},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, srv, "/add_person", models.Person{Weight: -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err := http.Get(srv.URL + "/get_persons")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing map[string][]models.Person
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	require.Len(t, listing["persons"], 1)
	assert.Equal(t, "XY9876", listing["persons"][0].PassportID)
}

func TestHandler_VenueRoutes(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv, "/add_venue", models.Venue{Name: "stadium", Capacity: 100})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err := http.Get(srv.URL + "/get_venues")
	require.NoError(t, err)
	defer resp.Body.Close()

	var listing map[string][]models.Venue
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	assert.Len(t, listing["venues"], 1)
}

func TestHandler_EventRoutes(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv, "/add_event", models.Event{Name: "opening night", TicketsCount: 250})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, srv, "/add_event", models.Event{Name: "broke", TicketsCount: 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err := http.Get(srv.URL + "/get_events")
	require.NoError(t, err)
	defer resp.Body.Close()

	var listing map[string][]models.Event
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	assert.Len(t, listing["events"], 1)
}
