package wizard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns wizard session routes. intake guards session creation and
// submission; nil disables it.
func (h *Handler) Routes(intake func(http.Handler) http.Handler) chi.Router {
	if intake == nil {
		intake = func(next http.Handler) http.Handler { return next }
	}

	r := chi.NewRouter()

	r.With(intake).Post("/", h.Create)

	r.Route("/{id}", func(r chi.Router) {
		r.Use(h.loadSession)

		r.Get("/", h.Get)
		r.Delete("/", h.Delete)
		r.Post("/open", h.Open)
		r.Post("/close", h.Close)

		r.Group(func(r chi.Router) {
			r.Use(requireOpen)

			r.Put("/date", h.SelectDate)
			r.Put("/time", h.SelectTime)
			r.Put("/details", h.SetDetails)
			r.Post("/advance", h.Advance)
			r.Post("/back", h.Back)
			r.With(intake).Post("/submit", h.Submit)
			r.Delete("/error", h.DismissError)
		})
	})

	return r
}
