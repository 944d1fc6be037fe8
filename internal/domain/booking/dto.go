package booking

import (
	"time"

	"github.com/google/uuid"
)

// AcknowledgementMessage is returned for every accepted request
const AcknowledgementMessage = "Request received. We'll confirm your consultation by email shortly."

// CreateBookingRequest is the POST /bookings payload
type CreateBookingRequest struct {
	Date    string `json:"date" validate:"required,isodate"`
	Time    string `json:"time" validate:"required,hhmm"`
	Name    string `json:"name" validate:"required,notblank,min=2,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Message string `json:"message,omitempty" validate:"max=2000"`
}

// RequestMeta carries transport details stored with a booking
type RequestMeta struct {
	IP             string
	UserAgent      string
	IdempotencyKey string
	Source         Source
}

// UpdateStatusRequest for admin status changes
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

// BookingCreatedResponse for public booking submission
type BookingCreatedResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
}

// BookingResponse for admin listings
type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Timezone  string    `json:"timezone"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	CreatedAt string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(b *Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:        b.ID,
		Date:      b.DateValue(),
		Time:      b.SlotTime,
		Timezone:  b.Timezone,
		Name:      b.FullName,
		Email:     b.Email,
		Status:    string(b.Status),
		Source:    string(b.Source),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
	if b.Message.Valid {
		resp.Message = b.Message.String
	}
	return resp
}

// AvailabilityResponse lists the selectable days and slots
type AvailabilityResponse struct {
	Timezone string        `json:"timezone"`
	Days     []CalendarDay `json:"days"`
	Slots    []string      `json:"slots"`
}
