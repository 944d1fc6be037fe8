package wizard

import (
	"context"
	"time"
)

// DefaultMockDelay is how long DelaySubmitter pretends to talk to a backend
const DefaultMockDelay = 1200 * time.Millisecond

// Payload is what a submission sends to the booking intake
type Payload struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Message        string `json:"message,omitempty"`
	IdempotencyKey string `json:"-"`
}

// Result is the intake's acknowledgement
type Result struct {
	Reference string `json:"reference,omitempty"`
	Message   string `json:"message"`
}

// Submitter performs the single outbound call of a submission
type Submitter interface {
	Submit(ctx context.Context, p Payload) (Result, error)
}

// SubmitterFunc adapts a function to Submitter
type SubmitterFunc func(ctx context.Context, p Payload) (Result, error)

func (f SubmitterFunc) Submit(ctx context.Context, p Payload) (Result, error) {
	return f(ctx, p)
}

// DelaySubmitter always succeeds after Delay unless ctx ends first
type DelaySubmitter struct {
	Delay time.Duration
}

func (d DelaySubmitter) Submit(ctx context.Context, p Payload) (Result, error) {
	delay := d.Delay
	if delay <= 0 {
		delay = DefaultMockDelay
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.C:
		return Result{Message: ConfirmationMessage}, nil
	}
}
