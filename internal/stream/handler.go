package stream

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler serves the long-lived subscription endpoint.
type Handler struct {
	registry *Registry
	logger   *slog.Logger
}

func NewHandler(registry *Registry, logger *slog.Logger) *Handler {
	return &Handler{registry: registry, logger: logger}
}

// Register mounts the stream route on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/tickets/stream", h.handleStream)
}

// handleStream attaches a subscriber and streams its events over SSE until
// the client disconnects. The first event is always the connected
// acknowledgment; everything after is an invalidate carrying {action, id}.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	sub := h.registry.Attach()
	defer h.registry.Detach(sub)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Closed():
			return
		case e := <-sub.Events():
			if err := writeEvent(w, e); err != nil {
				h.logger.DebugContext(ctx, "subscriber write failed", "subscriber_id", sub.ID(), "error", err)
				return
			}
			flusher.Flush()
		}
	}
}

// writeEvent renders one event in the wire shape clients expect: a "hello"
// event acknowledging the subscription, or an "invalidate" event with a JSON
// change descriptor.
func writeEvent(w http.ResponseWriter, e Event) error {
	eventID := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if e.Action == ActionConnected {
		_, err := fmt.Fprintf(w, "id: %s\nevent: hello\nretry: 3000\ndata: connected\n\n", eventID)
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "id: %s\nevent: invalidate\ndata: %s\n\n", eventID, data)
	return err
}
