// Package handler exposes the directory routes: list and add for persons,
// venues and events.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ticketd/internal/directory/models"
	"ticketd/pkg/async"
	"ticketd/pkg/derrors"
)

// Service defines the directory operations the handler depends on.
type Service interface {
	ListPersons(ctx context.Context) *async.Task[[]models.Person]
	AddPerson(ctx context.Context, p *models.Person) *async.Task[*models.Person]
	ListVenues(ctx context.Context) *async.Task[[]models.Venue]
	AddVenue(ctx context.Context, v *models.Venue) *async.Task[*models.Venue]
	ListEvents(ctx context.Context) *async.Task[[]models.Event]
	AddEvent(ctx context.Context, e *models.Event) *async.Task[*models.Event]
}

type Handler struct {
	logger    *slog.Logger
	directory Service
}

func New(directory Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, directory: directory}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/get_persons", h.handleListPersons)
	r.Post("/add_person", h.handleAddPerson)
	r.Get("/get_venues", h.handleListVenues)
	r.Post("/add_venue", h.handleAddVenue)
	r.Get("/get_events", h.handleListEvents)
	r.Post("/add_event", h.handleAddEvent)
}

func (h *Handler) handleListPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.directory.ListPersons(r.Context()).Wait(r.Context())
	if err != nil {
		writeStatus(w, derrors.ToHTTPStatus(err), false)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Person{"persons": persons})
}

func (h *Handler) handleAddPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var p models.Person
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeStatus(w, http.StatusBadRequest, false)
		return
	}
	if _, err := h.directory.AddPerson(ctx, &p).Wait(ctx); err != nil {
		h.logger.WarnContext(ctx, "person create failed", "error", err)
		writeStatus(w, derrors.ToHTTPStatus(err), false)
		return
	}
	writeStatus(w, http.StatusOK, true)
}

func (h *Handler) handleListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.directory.ListVenues(r.Context()).Wait(r.Context())
	if err != nil {
		writeStatus(w, derrors.ToHTTPStatus(err), false)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Venue{"venues": venues})
}

func (h *Handler) handleAddVenue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var v models.Venue
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeStatus(w, http.StatusBadRequest, false)
		return
	}
	if _, err := h.directory.AddVenue(ctx, &v).Wait(ctx); err != nil {
		h.logger.WarnContext(ctx, "venue create failed", "error", err)
		writeStatus(w, derrors.ToHTTPStatus(err), false)
		return
	}
	writeStatus(w, http.StatusOK, true)
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.directory.ListEvents(r.Context()).Wait(r.Context())
	if err != nil {
		writeStatus(w, derrors.ToHTTPStatus(err), false)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Event{"events": events})
}

func (h *Handler) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var e models.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeStatus(w, http.StatusBadRequest, false)
		return
	}
	if _, err := h.directory.AddEvent(ctx, &e).Wait(ctx); err != nil {
		h.logger.WarnContext(ctx, "event create failed", "error", err)
		writeStatus(w, derrors.ToHTTPStatus(err), false)
		return
	}
	writeStatus(w, http.StatusOK, true)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeStatus(w http.ResponseWriter, status int, ok bool) {
	writeJSON(w, status, map[string]bool{"status": ok})
}
