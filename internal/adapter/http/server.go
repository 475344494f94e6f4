// Package adapthttp is the local display shell: JSON endpoints for profile
// and weight entry, the report text and the weight chart.
package adapthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"weightlog/internal/app"
)

// Server is the driving HTTP adapter that routes requests to the tracker.
type Server struct {
	tracker      *app.Tracker
	log          zerolog.Logger
	passcodeHash []byte
}

// New creates a Server wired to the given tracker.
func New(t *app.Tracker, log zerolog.Logger) *Server {
	return &Server{tracker: t, log: log.With().Str("component", "http").Logger()}
}

// WithPasscodeHash requires HTTP basic auth whose password matches the
// bcrypt hash. An empty hash disables the check.
func (s *Server) WithPasscodeHash(hash string) *Server {
	s.passcodeHash = []byte(hash)
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.loggingMiddleware)
	r.Use(withNoCache)

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Group(func(r chi.Router) {
		r.Use(s.passcodeMiddleware)

		r.Get("/api/profiles", s.handleProfilesList)
		r.Post("/api/profiles", s.handleProfileCreate)
		r.Put("/api/profiles/current", s.handleProfileSelect)

		r.Get("/api/weight", s.handleWeightList)
		r.Post("/api/weight", s.handleWeightAdd)
		r.Get("/api/weight/convert", s.handleWeightConvert)

		r.Get("/api/charts/series", s.handleChartsSeries)
		r.Get("/api/charts/weight.png", s.handleChartsPNG)

		r.Get("/api/report", s.handleReport)
		r.Get("/api/export.xlsx", s.handleExport)
	})

	return r
}
