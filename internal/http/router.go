// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/rs/cors"

	"yatra/internal/http/handlers"
	"yatra/internal/http/middleware"
	"yatra/internal/modules/booking"
	"yatra/internal/modules/editor"
	"yatra/internal/modules/prefs"
	"yatra/internal/modules/trip"
)

type RouterDeps struct {
	Trips     *trip.Service
	Editor    *editor.Service
	Booking   *booking.Service
	Prefs     *prefs.Service
	PublicURL string
}

func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	tripHandler := handlers.NewTripHandler(deps.Trips)
	mux.HandleFunc("POST /api/trips", tripHandler.Create)
	mux.HandleFunc("GET /api/trips", tripHandler.List)
	mux.HandleFunc("GET /api/trips/{id}", tripHandler.Get)
	mux.HandleFunc("PATCH /api/trips/{id}", tripHandler.Patch)

	editorHandler := handlers.NewEditorHandler(deps.Editor)
	mux.HandleFunc("POST /api/trips/{id}/modify", editorHandler.Modify)
	mux.HandleFunc("POST /api/trips/{id}/chat", editorHandler.Chat)
	mux.HandleFunc("GET /api/trips/{id}/chat", editorHandler.ChatState)

	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	mux.HandleFunc("POST /api/trips/{id}/book", bookingHandler.Start)
	mux.HandleFunc("GET /api/trips/{id}/booking/log", bookingHandler.Log)

	exportHandler := handlers.NewExportHandler(deps.Trips, deps.PublicURL)
	mux.HandleFunc("GET /api/trips/{id}/export", exportHandler.Text)
	mux.HandleFunc("GET /api/trips/{id}/export.pdf", exportHandler.PDF)
	mux.HandleFunc("GET /api/trips/{id}/share", exportHandler.Share)
	mux.HandleFunc("GET /api/trips/{id}/share/qr.png", exportHandler.ShareQR)

	prefsHandler := handlers.NewPrefsHandler(deps.Prefs)
	mux.HandleFunc("GET /api/preferences/{userID}", prefsHandler.Get)
	mux.HandleFunc("PUT /api/preferences/{userID}", prefsHandler.Put)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	handler := middleware.Recovery(middleware.Logging(mux))
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(handler)
}
