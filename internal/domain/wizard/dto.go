package wizard

import "github.com/google/uuid"

// SelectDateRequest for PUT /sessions/{id}/date
type SelectDateRequest struct {
	Date string `json:"date" validate:"required,isodate"`
}

// SelectTimeRequest for PUT /sessions/{id}/time
type SelectTimeRequest struct {
	Time string `json:"time" validate:"required,hhmm"`
}

// DetailsRequest for PUT /sessions/{id}/details. Fields may be partial;
// they are validated on submit.
type DetailsRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SessionResponse is returned by every session endpoint
type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Open      bool      `json:"open"`
	Wizard    View      `json:"wizard"`
}

func toResponse(sess *Session) *SessionResponse {
	return &SessionResponse{
		SessionID: sess.ID,
		Open:      sess.Controller.IsOpen(),
		Wizard:    sess.Controller.Wizard().Snapshot(),
	}
}
