package admin

import (
	"errors"
	"net/http"

	"github.com/zenora/zenora-api/internal/middleware"
	"github.com/zenora/zenora-api/internal/pkg/errorhandler"
	"github.com/zenora/zenora-api/internal/pkg/response"
	"github.com/zenora/zenora-api/internal/pkg/validator"
)

// Handler handles admin auth HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates admin handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		case errors.Is(err, ErrNotConfigured):
			response.Error(w, http.StatusServiceUnavailable, "ADMIN_DISABLED", "Admin login is not configured")
		default:
			errorhandler.Internal(r.Context(), w, err)
		}
		return
	}

	response.OK(w, resp)
}

// Me handles GET /admin/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	response.OK(w, &MeResponse{
		Email: middleware.GetAdminEmail(r.Context()),
		Role:  middleware.GetRole(r.Context()),
	})
}
