package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/zenora/zenora-api/internal/middleware"
	"github.com/zenora/zenora-api/internal/pkg/errorhandler"
	"github.com/zenora/zenora-api/internal/pkg/response"
	"github.com/zenora/zenora-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates booking handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /bookings (public)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	b, err := h.svc.Create(r.Context(), &req, RequestMeta{
		IP:             middleware.ClientIP(r),
		UserAgent:      r.UserAgent(),
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
		Source:         SourceForm,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Created(w, &BookingCreatedResponse{
		BookingID: b.ID,
		Status:    string(b.Status),
		Message:   AcknowledgementMessage,
	})
}

// Availability handles GET /bookings/availability
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.svc.Availability())
}

// List handles GET /admin/bookings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	var status *Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := Status(s)
		status = &st
	}

	bookings, total, err := h.svc.List(r.Context(), status, limit, offset)
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	items := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = ToResponse(b)
	}

	response.WithMeta(w, items, response.Meta{Total: total, Limit: limit, Offset: offset})
}

// UpdateStatus handles PATCH /admin/bookings/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	b, err := h.svc.UpdateStatus(r.Context(), id, Status(req.Status))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, ToResponse(b))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidDate):
		response.ValidationError(w, map[string]string{"date": "Invalid date, expected YYYY-MM-DD"})
	case errors.Is(err, ErrDateOutOfWindow):
		response.ValidationError(w, map[string]string{"date": "Date must be within the next 14 days"})
	case errors.Is(err, ErrInvalidSlot):
		response.ValidationError(w, map[string]string{"time": "Time is not an available slot"})
	case errors.Is(err, ErrSlotInPast):
		response.ValidationError(w, map[string]string{"time": "This time has already passed"})
	case errors.Is(err, ErrDuplicateSubmission):
		response.Conflict(w, "DUPLICATE_SUBMISSION", "This booking request was already received")
	case errors.Is(err, ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, ErrAlreadyFinal):
		response.Conflict(w, "BOOKING_FINAL", "Booking is already confirmed or cancelled")
	default:
		errorhandler.Internal(r.Context(), w, err)
	}
}

func pagination(r *http.Request) (int, int) {
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
	return limit, offset
}
