package wizard

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/zenora/zenora-api/internal/pkg/errorhandler"
	"github.com/zenora/zenora-api/internal/pkg/logger"
	"github.com/zenora/zenora-api/internal/pkg/response"
	"github.com/zenora/zenora-api/internal/pkg/validator"
)

type sessionKey struct{}

// Handler handles wizard session HTTP requests
type Handler struct {
	store *SessionStore
}

// NewHandler creates wizard handler
func NewHandler(store *SessionStore) *Handler {
	return &Handler{store: store}
}

// loadSession resolves {id} into the request context
func (h *Handler) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			response.BadRequest(w, "Invalid session ID")
			return
		}
		sess, err := h.store.Get(id)
		if err != nil {
			response.NotFound(w, "Wizard session not found")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

// requireOpen rejects wizard actions while the dialog is closed
func requireOpen(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !sessionFrom(r).Controller.IsOpen() {
			response.Conflict(w, "DIALOG_CLOSED", "Open the booking dialog first")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func sessionFrom(r *http.Request) *Session {
	sess, _ := r.Context().Value(sessionKey{}).(*Session)
	return sess
}

// Create handles POST /wizard/sessions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Create()
	logger.FromContext(r.Context()).Debug().Str("session_id", sess.ID.String()).Msg("Wizard session created")
	response.Created(w, toResponse(sess))
}

// Get handles GET /wizard/sessions/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	response.OK(w, toResponse(sessionFrom(r)))
}

// Delete handles DELETE /wizard/sessions/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(sessionFrom(r).ID); err != nil {
		response.NotFound(w, "Wizard session not found")
		return
	}
	response.NoContent(w)
}

// Open handles POST /wizard/sessions/{id}/open
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Controller.Open()
	response.OK(w, toResponse(sess))
}

// Close handles POST /wizard/sessions/{id}/close
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Controller.Close()
	response.OK(w, toResponse(sess))
}

// SelectDate handles PUT /wizard/sessions/{id}/date
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req SelectDateRequest
	if !decode(w, r, &req) {
		return
	}
	sess := sessionFrom(r)
	h.respond(w, r, sess, sess.Controller.Wizard().SelectDate(req.Date))
}

// SelectTime handles PUT /wizard/sessions/{id}/time
func (h *Handler) SelectTime(w http.ResponseWriter, r *http.Request) {
	var req SelectTimeRequest
	if !decode(w, r, &req) {
		return
	}
	sess := sessionFrom(r)
	h.respond(w, r, sess, sess.Controller.Wizard().SelectTime(req.Time))
}

// SetDetails handles PUT /wizard/sessions/{id}/details
func (h *Handler) SetDetails(w http.ResponseWriter, r *http.Request) {
	var req DetailsRequest
	if !decode(w, r, &req) {
		return
	}
	sess := sessionFrom(r)
	h.respond(w, r, sess, sess.Controller.Wizard().SetDetails(req.Name, req.Email, req.Message))
}

// Advance handles POST /wizard/sessions/{id}/advance
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	h.respond(w, r, sess, sess.Controller.Wizard().Advance())
}

// Back handles POST /wizard/sessions/{id}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	h.respond(w, r, sess, sess.Controller.Wizard().Back())
}

// Submit handles POST /wizard/sessions/{id}/submit. The call outlives a
// dropped client connection; only closing the dialog abandons it.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	_, err := sess.Controller.Wizard().Submit(context.WithoutCancel(r.Context()))
	if errors.Is(err, ErrSubmissionFailed) {
		response.OK(w, toResponse(sess))
		return
	}
	h.respond(w, r, sess, err)
}

// DismissError handles DELETE /wizard/sessions/{id}/error
func (h *Handler) DismissError(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Controller.Wizard().DismissError()
	response.OK(w, toResponse(sess))
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := response.DecodeJSON(w, r, v); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return false
	}
	if errs := validator.Validate(v); errs != nil {
		response.ValidationError(w, errs)
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, sess *Session, err error) {
	var verr *ValidationError

	switch {
	case err == nil:
		response.OK(w, toResponse(sess))
	case errors.As(err, &verr):
		errorhandler.LogValidationError(r.Context(), verr.Fields)
		response.ValidationError(w, verr.Fields)
	case errors.Is(err, ErrUnknownDate):
		response.ValidationError(w, map[string]string{"date": "Date is not available"})
	case errors.Is(err, ErrUnknownSlot):
		response.ValidationError(w, map[string]string{"time": "Time is not an available slot"})
	case errors.Is(err, ErrGuardUnmet):
		response.Conflict(w, "GUARD_UNMET", "Make a selection before continuing")
	case errors.Is(err, ErrInvalidStep):
		response.Conflict(w, "INVALID_STEP", "Action not available on this step")
	case errors.Is(err, ErrSubmissionPending):
		response.Conflict(w, "SUBMISSION_PENDING", "Your request is being sent")
	case errors.Is(err, ErrAbandoned):
		response.Conflict(w, "DIALOG_CLOSED", "The booking dialog was closed")
	default:
		errorhandler.Internal(r.Context(), w, err)
	}
}
