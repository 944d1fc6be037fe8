package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes returns public contact routes
func (h *Handler) PublicRoutes(intake func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	if intake != nil {
		r.Use(intake)
	}

	r.Post("/", h.Submit)

	return r
}

// AdminRoutes returns admin contact routes
func (h *Handler) AdminRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/", h.List)

	return r
}
