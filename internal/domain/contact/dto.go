package contact

import (
	"time"

	"github.com/google/uuid"
)

// ThankYouMessage is returned for every accepted contact form
const ThankYouMessage = "Thank you for reaching out. A member of our team will be in touch within 24 hours to schedule your complimentary consultation."

// CreateMessageRequest is the POST /contact payload
type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required,notblank,min=2,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,phone,min=7,max=20"`
	Company string `json:"company,omitempty" validate:"max=255"`
	Message string `json:"message" validate:"required,notblank,max=5000"`
}

// MessageSubmittedResponse for public contact submission
type MessageSubmittedResponse struct {
	MessageID uuid.UUID `json:"message_id"`
	Message   string    `json:"message"`
}

// MessageResponse for admin listings
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(m *Message) *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone.String,
		Company:   m.Company.String,
		Message:   m.Body,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}
