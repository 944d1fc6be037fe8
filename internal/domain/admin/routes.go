package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zenora/zenora-api/internal/middleware"
	"github.com/zenora/zenora-api/internal/pkg/jwt"
)

// Section is an admin-only sub-router mounted under /admin
type Section struct {
	Path   string
	Routes func(auth func(http.Handler) http.Handler) chi.Router
}

// Authenticated returns the middleware chain every admin route runs behind
func Authenticated(jwtSvc *jwt.Service) func(http.Handler) http.Handler {
	authMW := middleware.Auth(jwtSvc)
	roleMW := middleware.RequireRole(RoleAdmin)
	return func(next http.Handler) http.Handler {
		return authMW(roleMW(next))
	}
}

// Routes returns admin routes
func (h *Handler) Routes(jwtSvc *jwt.Service, sections ...Section) chi.Router {
	r := chi.NewRouter()
	auth := Authenticated(jwtSvc)

	r.Post("/login", h.Login)
	r.With(auth).Get("/me", h.Me)

	for _, s := range sections {
		r.Mount(s.Path, s.Routes(auth))
	}

	return r
}
