package handler

import (
	"encoding/json"
	"net/http"

	"ticketd/pkg/derrors"
)

// SellRequest is the payload of POST /sell_ticket.
type SellRequest struct {
	TicketID int64   `json:"ticketId"`
	PersonID int64   `json:"personId"`
	Amount   float64 `json:"amount"`
}

// CloneRequest is the payload of POST /clone_vip.
type CloneRequest struct {
	TicketID int64 `json:"ticketId"`
}

// ErrorResponse is the error envelope the original frontend consumes.
type ErrorResponse struct {
	Title        string `json:"title"`
	ErrorMessage string `json:"errorMessage"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeStatus(w http.ResponseWriter, status int, ok bool) {
	writeJSON(w, status, map[string]bool{"status": ok})
}

// writeError renders a coded domain error. Only the domain message crosses
// the wire; wrapped store errors stay in the logs.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, derrors.ToHTTPStatus(err), ErrorResponse{
		Title:        "request failed",
		ErrorMessage: derrors.Message(err),
	})
}
