package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes returns public booking routes. intake wraps the submit
// endpoint (rate limiting).
func (h *Handler) PublicRoutes(intake func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	if intake == nil {
		intake = func(next http.Handler) http.Handler { return next }
	}

	r.Get("/availability", h.Availability)
	r.With(intake).Post("/", h.Create)

	return r
}

// AdminRoutes returns admin booking routes
func (h *Handler) AdminRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/", h.List)
	r.Patch("/{id}/status", h.UpdateStatus)

	return r
}
