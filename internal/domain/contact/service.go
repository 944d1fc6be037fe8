package contact

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zenora/zenora-api/internal/pkg/email"
	"github.com/zenora/zenora-api/internal/pkg/metrics"
)

// Notifier queues contact emails without blocking the caller
type Notifier interface {
	SendContactReceived(data email.ContactEmail)
	SendContactNotify(inbox string, data email.ContactEmail)
}

// Service handles contact form logic
type Service struct {
	repo     Repository
	notifier Notifier
	metrics  *metrics.Metrics
	inbox    string
}

// NewService creates contact service
func NewService(repo Repository, notifier Notifier, m *metrics.Metrics, inbox string) *Service {
	return &Service{repo: repo, notifier: notifier, metrics: m, inbox: inbox}
}

// Submit stores a contact message (public endpoint)
func (s *Service) Submit(ctx context.Context, req *CreateMessageRequest, ip, userAgent string) (*Message, error) {
	phone := strings.TrimSpace(req.Phone)
	company := strings.TrimSpace(req.Company)

	m := &Message{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     sql.NullString{String: phone, Valid: phone != ""},
		Company:   sql.NullString{String: company, Valid: company != ""},
		Body:      strings.TrimSpace(req.Message),
		Status:    StatusNew,
		IPAddress: sql.NullString{String: ip, Valid: ip != ""},
		UserAgent: sql.NullString{String: userAgent, Valid: userAgent != ""},
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.metrics.ObserveSubmission("contact", "error")
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	s.metrics.ObserveSubmission("contact", "accepted")

	if s.notifier != nil {
		data := email.ContactEmail{
			Name:    m.Name,
			Email:   m.Email,
			Phone:   phone,
			Company: company,
			Message: m.Body,
			ID:      m.ID.String(),
		}
		s.notifier.SendContactReceived(data)
		if s.inbox != "" {
			s.notifier.SendContactNotify(s.inbox, data)
		}
	}

	log.Info().Str("message_id", m.ID.String()).Msg("Contact message received")
	return m, nil
}

// List returns contact messages with optional status filter
func (s *Service) List(ctx context.Context, status *Status, limit, offset int) ([]*Message, int, error) {
	return s.repo.List(ctx, status, limit, offset)
}
