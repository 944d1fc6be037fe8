package booking

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status represents booking request status
type Status string

const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Source records which surface produced the request
type Source string

const (
	SourceForm   Source = "form"
	SourceWizard Source = "wizard"
)

// Booking is a consultation request (bookings table)
type Booking struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	BookingDate time.Time `db:"booking_date"`
	SlotTime    string    `db:"slot_time"`
	Timezone    string    `db:"timezone"`

	FullName string         `db:"full_name"`
	Email    string         `db:"email"`
	Message  sql.NullString `db:"message"`

	Status         Status         `db:"status"`
	Source         Source         `db:"source"`
	IdempotencyKey sql.NullString `db:"idempotency_key"`
	IPAddress      sql.NullString `db:"ip_address"`
	UserAgent      sql.NullString `db:"user_agent"`
}

// DateValue returns the booking day as YYYY-MM-DD
func (b *Booking) DateValue() string {
	return b.BookingDate.Format(time.DateOnly)
}

// IsFinal reports whether the request was already confirmed or cancelled
func (b *Booking) IsFinal() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCancelled
}
