// Package handler is the thin HTTP layer over the ticket service. It decodes
// requests, awaits the operation task, and shapes responses; business logic
// stays in the service.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ticketd/internal/ticket/models"
	"ticketd/pkg/async"
	"ticketd/pkg/derrors"
)

// Service defines the ticket operations the handler depends on. Every
// operation returns a task; the handler awaits it with the request context.
type Service interface {
	List(ctx context.Context) *async.Task[[]models.Ticket]
	Add(ctx context.Context, t *models.Ticket) *async.Task[*models.Ticket]
	Get(ctx context.Context, id int64) *async.Task[*models.Ticket]
	Update(ctx context.Context, id int64, t *models.Ticket) *async.Task[*models.Ticket]
	Remove(ctx context.Context, id int64) *async.Task[struct{}]
	DeleteAllByComment(ctx context.Context, comment string) *async.Task[int64]
	WithEarliestEvent(ctx context.Context) *async.Task[*models.Ticket]
	CountCommentLessThan(ctx context.Context, comment string) *async.Task[int64]
	Sell(ctx context.Context, ticketID, personID int64, amount float64) *async.Task[*models.Ticket]
	ClonePremium(ctx context.Context, ticketID int64) *async.Task[*models.Ticket]
}

type Handler struct {
	logger  *slog.Logger
	tickets Service
}

func New(tickets Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, tickets: tickets}
}

// Register mounts the ticket routes. Paths match the original frontend
// contract, so existing clients keep working.
func (h *Handler) Register(r chi.Router) {
	r.Get("/get_tickets", h.handleList)
	r.Post("/add_ticket", h.handleAdd)
	r.Get("/get_ticket/{id}", h.handleGet)
	r.Post("/update_ticket/{id}", h.handleUpdate)
	r.Delete("/delete_ticket/{id}", h.handleRemove)
	r.Delete("/delete_by_comment", h.handleDeleteByComment)
	r.Get("/min_event_ticket", h.handleEarliestEvent)
	r.Get("/count_comment_less", h.handleCountCommentLess)
	r.Post("/sell_ticket", h.handleSell)
	r.Post("/clone_vip", h.handleClonePremium)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.tickets.List(r.Context()).Wait(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Ticket{"tickets": tickets})
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var t models.Ticket
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeStatus(w, http.StatusBadRequest, false)
		return
	}
	if _, err := h.tickets.Add(ctx, &t).Wait(ctx); err != nil {
		h.logger.WarnContext(ctx, "ticket create failed", "error", err)
		writeStatus(w, derrors.ToHTTPStatus(err), false)
		return
	}
	writeStatus(w, http.StatusOK, true)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	t, err := h.tickets.Get(ctx, id).Wait(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var t models.Ticket
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "invalid request body"))
		return
	}
	if _, err := h.tickets.Update(ctx, id, &t).Wait(ctx); err != nil {
		h.logger.WarnContext(ctx, "ticket update failed", "id", id, "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := h.tickets.Remove(ctx, id).Wait(ctx); err != nil {
		h.logger.WarnContext(ctx, "ticket delete failed", "id", id, "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleDeleteByComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	comment := r.URL.Query().Get("commentEq")
	removed, err := h.tickets.DeleteAllByComment(ctx, comment).Wait(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "bulk delete by comment failed", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": true, "removed": removed})
}

func (h *Handler) handleEarliestEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t, err := h.tickets.WithEarliestEvent(ctx).Wait(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) handleCountCommentLess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	comment := r.URL.Query().Get("comment")
	count, err := h.tickets.CountCommentLessThan(ctx, comment).Wait(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *Handler) handleSell(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, false)
		return
	}
	if _, err := h.tickets.Sell(ctx, req.TicketID, req.PersonID, req.Amount).Wait(ctx); err != nil {
		h.logger.WarnContext(ctx, "ticket sale failed", "ticket_id", req.TicketID, "error", err)
		writeStatus(w, derrors.ToHTTPStatus(err), false)
		return
	}
	writeStatus(w, http.StatusOK, true)
}

func (h *Handler) handleClonePremium(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CloneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "invalid request body"))
		return
	}
	clone, err := h.tickets.ClonePremium(ctx, req.TicketID).Wait(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "premium clone failed", "ticket_id", req.TicketID, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clone)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, derrors.New(derrors.CodeBadRequest, "invalid ticket id"))
		return 0, false
	}
	return id, true
}
