// README: User preference handlers for the profile page.
package handlers

import (
	"encoding/json"
	"net/http"

	"yatra/internal/modules/prefs"
)

type PrefsHandler struct {
	prefs *prefs.Service
}

func NewPrefsHandler(svc *prefs.Service) *PrefsHandler {
	return &PrefsHandler{prefs: svc}
}

func (h *PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing user id")
		return
	}
	p, err := h.prefs.Get(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PrefsHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing user id")
		return
	}
	var p prefs.Preferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.prefs.Save(r.Context(), userID, &p); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &p)
}
