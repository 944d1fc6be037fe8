package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zenora/zenora-api/internal/pkg/response"
)

// Handler serves static site content
type Handler struct {
	page Page
}

// NewHandler creates content handler
func NewHandler(page Page) *Handler {
	return &Handler{page: page}
}

// Get handles GET /content
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	response.OK(w, h.page)
}

// Routes returns content routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	return r
}
