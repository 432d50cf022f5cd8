// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"yatra/internal/ai"
	"yatra/internal/modules/booking"
	"yatra/internal/modules/editor"
	"yatra/internal/modules/trip"
	"yatra/internal/store"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps service errors onto HTTP statuses. Validation errors
// carry their field map so the form can highlight inputs.
func writeDomainError(w http.ResponseWriter, err error) {
	var verr trip.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request", Fields: verr})
		return
	}
	var upstream *ai.UpstreamError
	var malformed *ai.MalformedResponseError
	var storage *store.StorageError
	switch {
	case errors.Is(err, trip.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ai.ErrMissingAPIKey):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, editor.ErrIncompleteResponse):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.As(err, &upstream), errors.As(err, &malformed):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, booking.ErrAlreadyRunning):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &storage):
		writeError(w, http.StatusInternalServerError, "storage error")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
