// README: Export handlers: text download, PDF, share link and QR image.
package handlers

import (
	"net/http"

	"yatra/internal/modules/export"
	"yatra/internal/modules/trip"
	"yatra/internal/types"
)

type ExportHandler struct {
	trips     *trip.Service
	publicURL string
}

func NewExportHandler(svc *trip.Service, publicURL string) *ExportHandler {
	return &ExportHandler{trips: svc, publicURL: publicURL}
}

func (h *ExportHandler) plan(w http.ResponseWriter, r *http.Request) (*trip.TripPlan, bool) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing trip id")
		return nil, false
	}
	plan, err := h.trips.Get(r.Context(), types.ID(id))
	if err != nil {
		writeDomainError(w, err)
		return nil, false
	}
	return plan, true
}

func (h *ExportHandler) Text(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plan(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(plan)+`"`)
	_, _ = w.Write([]byte(export.Text(plan)))
}

func (h *ExportHandler) PDF(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plan(w, r)
	if !ok {
		return
	}
	doc, err := export.PDF(plan)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "pdf generation failed")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+string(plan.ID)+`.pdf"`)
	_, _ = w.Write(doc)
}

func (h *ExportHandler) Share(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plan(w, r)
	if !ok {
		return
	}
	url, text := export.ShareLink(h.publicURL, plan)
	writeJSON(w, http.StatusOK, map[string]any{
		"title": plan.Title,
		"text":  text,
		"url":   url,
	})
}

func (h *ExportHandler) ShareQR(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plan(w, r)
	if !ok {
		return
	}
	url, _ := export.ShareLink(h.publicURL, plan)
	png, err := export.QR(url)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "qr generation failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
