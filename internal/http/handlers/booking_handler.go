// README: Booking handlers: start the agent, poll its log.
package handlers

import (
	"net/http"

	"yatra/internal/modules/booking"
	"yatra/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

func (h *BookingHandler) Start(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing trip id")
		return
	}
	if err := h.booking.Start(r.Context(), types.ID(id)); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"state": booking.StateProcessing})
}

func (h *BookingHandler) Log(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing trip id")
		return
	}
	entries, err := h.booking.Log(r.Context(), types.ID(id))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"state": h.booking.Status(types.ID(id)),
		"log":   entries,
	})
}
