package wizard

import (
	"context"
	"errors"
	"net/http"

	"github.com/zenora/zenora-api/internal/domain/booking"
	"github.com/zenora/zenora-api/internal/pkg/bookingclient"
)

const (
	slotTakenReason   = "That time is no longer available. Please pick another slot."
	windowEndedReason = "That date is no longer bookable. Please choose another day."
)

// BookingCreator is the in-process booking intake
type BookingCreator interface {
	Create(ctx context.Context, req *booking.CreateBookingRequest, meta booking.RequestMeta) (*booking.Booking, error)
}

// ServiceSubmitter submits through the local booking service
type ServiceSubmitter struct {
	Bookings BookingCreator
}

func (s ServiceSubmitter) Submit(ctx context.Context, p Payload) (Result, error) {
	req := &booking.CreateBookingRequest{
		Date:    p.Date,
		Time:    p.Time,
		Name:    p.Name,
		Email:   p.Email,
		Message: p.Message,
	}
	b, err := s.Bookings.Create(ctx, req, booking.RequestMeta{
		IdempotencyKey: p.IdempotencyKey,
		Source:         booking.SourceWizard,
	})
	switch {
	case errors.Is(err, booking.ErrDuplicateSubmission):
		// an earlier attempt with this key already landed
		return Result{Message: ConfirmationMessage}, nil
	case errors.Is(err, booking.ErrSlotInPast), errors.Is(err, booking.ErrInvalidSlot):
		return Result{}, &RejectedError{Reason: slotTakenReason, Err: err}
	case errors.Is(err, booking.ErrDateOutOfWindow), errors.Is(err, booking.ErrInvalidDate):
		return Result{}, &RejectedError{Reason: windowEndedReason, Err: err}
	case err != nil:
		return Result{}, err
	}
	return Result{Reference: b.ID.String(), Message: ConfirmationMessage}, nil
}

// BookingPoster is a remote booking intake
type BookingPoster interface {
	CreateBooking(ctx context.Context, req bookingclient.Request, idempotencyKey string) (*bookingclient.Acknowledgement, error)
}

// ClientSubmitter submits to a remote intake over HTTP
type ClientSubmitter struct {
	Client BookingPoster
}

func (s ClientSubmitter) Submit(ctx context.Context, p Payload) (Result, error) {
	ack, err := s.Client.CreateBooking(ctx, bookingclient.Request{
		Date:    p.Date,
		Time:    p.Time,
		Name:    p.Name,
		Email:   p.Email,
		Message: p.Message,
	}, p.IdempotencyKey)
	if err != nil {
		var httpErr *bookingclient.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.Code == "DUPLICATE_SUBMISSION" {
				return Result{Message: ConfirmationMessage}, nil
			}
			if httpErr.StatusCode < http.StatusInternalServerError && httpErr.Message != "" {
				return Result{}, &RejectedError{Reason: httpErr.Message, Err: err}
			}
		}
		if errors.Is(err, bookingclient.ErrTimeout) {
			return Result{}, &RejectedError{Reason: timeoutReason, Err: err}
		}
		return Result{}, err
	}
	return Result{Reference: ack.BookingID, Message: ConfirmationMessage}, nil
}
