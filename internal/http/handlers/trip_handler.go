// README: Trip handlers for plan/list/get/patch.
package handlers

import (
	"encoding/json"
	"net/http"

	"yatra/internal/modules/trip"
	"yatra/internal/types"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req trip.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	plan, err := h.trips.Plan(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.trips.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing trip id")
		return
	}
	plan, err := h.trips.Get(r.Context(), types.ID(id))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *TripHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing trip id")
		return
	}
	var partial map[string]any
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(partial) == 0 {
		writeError(w, http.StatusBadRequest, "empty patch")
		return
	}
	if err := h.trips.Update(r.Context(), types.ID(id), partial); err != nil {
		writeDomainError(w, err)
		return
	}
	plan, err := h.trips.Get(r.Context(), types.ID(id))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
