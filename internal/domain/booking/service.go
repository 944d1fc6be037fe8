package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zenora/zenora-api/internal/pkg/email"
	"github.com/zenora/zenora-api/internal/pkg/idempotency"
	"github.com/zenora/zenora-api/internal/pkg/metrics"
)

// idempotencyTTL is how long a submitted Idempotency-Key is remembered
const idempotencyTTL = 24 * time.Hour

// Notifier queues booking emails without blocking the caller
type Notifier interface {
	SendBookingReceived(data email.BookingEmail)
	SendBookingNotify(inbox string, data email.BookingEmail)
}

// Config holds booking intake settings
type Config struct {
	Location    *time.Location
	WindowDays  int
	StudioInbox string
}

// Service handles booking business logic
type Service struct {
	repo     Repository
	idem     idempotency.Store
	notifier Notifier
	metrics  *metrics.Metrics
	cfg      Config
	now      func() time.Time
}

// NewService creates booking service
func NewService(repo Repository, idem idempotency.Store, notifier Notifier, m *metrics.Metrics, cfg Config) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = WindowDays
	}
	if idem == nil {
		idem = idempotency.NewMemoryStore()
	}
	return &Service{
		repo:     repo,
		idem:     idem,
		notifier: notifier,
		metrics:  m,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Window returns the currently selectable days
func (s *Service) Window() Window {
	return NextDays(s.now().In(s.cfg.Location), s.cfg.WindowDays)
}

// Availability returns the days and static slots offered to clients
func (s *Service) Availability() *AvailabilityResponse {
	return &AvailabilityResponse{
		Timezone: SlotTimezoneLabel,
		Days:     s.Window(),
		Slots:    TimeSlots(),
	}
}

// CheckSlot verifies that date/slot are inside the window and not in the past
func (s *Service) CheckSlot(date, slot string) (time.Time, error) {
	if !IsValidSlot(slot) {
		return time.Time{}, ErrInvalidSlot
	}

	day, err := time.ParseInLocation(time.DateOnly, date, s.cfg.Location)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	now := s.now().In(s.cfg.Location)
	if !NextDays(now, s.cfg.WindowDays).Contains(date) {
		return time.Time{}, ErrDateOutOfWindow
	}

	start, err := time.ParseInLocation(time.DateOnly+" 15:04", date+" "+slot, s.cfg.Location)
	if err != nil {
		return time.Time{}, ErrInvalidSlot
	}
	if !start.After(now) {
		return time.Time{}, ErrSlotInPast
	}

	return day, nil
}

// Create records a booking request (public endpoint and wizard submissions)
func (s *Service) Create(ctx context.Context, req *CreateBookingRequest, meta RequestMeta) (*Booking, error) {
	day, err := s.CheckSlot(req.Date, req.Time)
	if err != nil {
		s.metrics.ObserveSubmission("booking", "rejected")
		return nil, err
	}

	if meta.IdempotencyKey != "" {
		claimed, err := s.idem.Claim(ctx, "booking:"+meta.IdempotencyKey, idempotencyTTL)
		if err != nil {
			log.Warn().Err(err).Msg("Idempotency store unavailable, accepting request")
		} else if !claimed {
			s.metrics.ObserveSubmission("booking", "duplicate")
			return nil, ErrDuplicateSubmission
		}
	}

	if meta.Source == "" {
		meta.Source = SourceForm
	}

	now := s.now()
	message := strings.TrimSpace(req.Message)
	b := &Booking{
		ID:             uuid.New(),
		BookingDate:    day,
		SlotTime:       req.Time,
		Timezone:       SlotTimezoneLabel,
		FullName:       strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Message:        sql.NullString{String: message, Valid: message != ""},
		Status:         StatusRequested,
		Source:         meta.Source,
		IdempotencyKey: sql.NullString{String: meta.IdempotencyKey, Valid: meta.IdempotencyKey != ""},
		IPAddress:      sql.NullString{String: meta.IP, Valid: meta.IP != ""},
		UserAgent:      sql.NullString{String: meta.UserAgent, Valid: meta.UserAgent != ""},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		if meta.IdempotencyKey != "" {
			// Let the client retry with the same key
			_ = s.idem.Release(ctx, "booking:"+meta.IdempotencyKey)
		}
		s.metrics.ObserveSubmission("booking", "error")
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.metrics.ObserveSubmission("booking", "accepted")
	s.notify(b)

	log.Info().
		Str("booking_id", b.ID.String()).
		Str("date", b.DateValue()).
		Str("time", b.SlotTime).
		Str("source", string(b.Source)).
		Msg("Booking request received")

	return b, nil
}

func (s *Service) notify(b *Booking) {
	if s.notifier == nil {
		return
	}
	data := email.BookingEmail{
		Name:     b.FullName,
		Email:    b.Email,
		Date:     b.DateValue(),
		Time:     b.SlotTime,
		Timezone: b.Timezone,
		Message:  b.Message.String,
		ID:       b.ID.String(),
	}
	s.notifier.SendBookingReceived(data)
	if s.cfg.StudioInbox != "" {
		s.notifier.SendBookingNotify(s.cfg.StudioInbox, data)
	}
}

// GetByID returns booking by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// List returns bookings with optional status filter
func (s *Service) List(ctx context.Context, status *Status, limit, offset int) ([]*Booking, int, error) {
	return s.repo.List(ctx, status, limit, offset)
}

// UpdateStatus confirms or cancels a requested booking
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Booking, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.IsFinal() {
		return nil, ErrAlreadyFinal
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}
