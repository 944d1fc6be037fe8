package contact

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status represents contact message status
type Status string

const (
	StatusNew     Status = "new"
	StatusReplied Status = "replied"
)

// Message is a contact form submission (contact_messages table)
type Message struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	Name    string         `db:"name"`
	Email   string         `db:"email"`
	Phone   sql.NullString `db:"phone"`
	Company sql.NullString `db:"company"`
	Body    string         `db:"message"`

	Status    Status         `db:"status"`
	IPAddress sql.NullString `db:"ip_address"`
	UserAgent sql.NullString `db:"user_agent"`
}
