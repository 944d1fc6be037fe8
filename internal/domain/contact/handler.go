package contact

import (
	"net/http"
	"strconv"

	"github.com/zenora/zenora-api/internal/middleware"
	"github.com/zenora/zenora-api/internal/pkg/errorhandler"
	"github.com/zenora/zenora-api/internal/pkg/response"
	"github.com/zenora/zenora-api/internal/pkg/validator"
)

// Handler handles contact HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates contact handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submit handles POST /contact (public)
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	m, err := h.svc.Submit(r.Context(), &req, middleware.ClientIP(r), r.UserAgent())
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	response.Created(w, &MessageSubmittedResponse{
		MessageID: m.ID,
		Message:   ThankYouMessage,
	})
}

// List handles GET /admin/contact-messages
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0

	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	var status *Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := Status(s)
		status = &st
	}

	messages, total, err := h.svc.List(r.Context(), status, limit, offset)
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	items := make([]*MessageResponse, len(messages))
	for i, m := range messages {
		items[i] = ToResponse(m)
	}

	response.WithMeta(w, items, response.Meta{Total: total, Limit: limit, Offset: offset})
}
