// Package wizard implements the booking dialog: the step machine, the draft,
// the submission flow and the visibility controller that owns them.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zenora/zenora-api/internal/domain/booking"
	"github.com/zenora/zenora-api/internal/pkg/metrics"
)

const (
	// DefaultSubmitTimeout bounds the outbound submission call
	DefaultSubmitTimeout = 10 * time.Second

	// ConfirmationMessage is shown on the SUCCESS step
	ConfirmationMessage = "We'll confirm your consultation by email shortly. Check your inbox for next steps."

	timeoutReason = "The booking service took too long to respond. Please try again."
	genericReason = "We couldn't send your request. Please check your connection and try again."
)

// Options configures a Wizard
type Options struct {
	Submitter     Submitter
	SubmitTimeout time.Duration
	WindowDays    int
	Location      *time.Location
	Metrics       *metrics.Metrics
	Now           func() time.Time
}

// View is an immutable snapshot used for rendering
type View struct {
	Step         Step                  `json:"step"`
	Submission   SubmissionState       `json:"submission"`
	Draft        Draft                 `json:"draft"`
	Days         []booking.CalendarDay `json:"days"`
	Slots        []string              `json:"slots"`
	Timezone     string                `json:"timezone"`
	CanAdvance   bool                  `json:"can_advance"`
	CanGoBack    bool                  `json:"can_go_back"`
	CanSubmit    bool                  `json:"can_submit"`
	LastError    string                `json:"last_error,omitempty"`
	Confirmation *Result               `json:"confirmation,omitempty"`
}

// Wizard is the booking step machine. All methods are safe for concurrent use.
type Wizard struct {
	mu sync.Mutex

	submitter     Submitter
	submitTimeout time.Duration
	windowDays    int
	location      *time.Location
	metrics       *metrics.Metrics
	now           func() time.Time

	step      Step
	draft     Draft
	days      booking.Window
	state     SubmissionState
	lastError string
	result    *Result

	// attemptKey identifies one draft content across retries
	attemptKey string
	// epoch changes on every reset; in-flight results from an older epoch are dropped
	epoch  uint64
	cancel context.CancelFunc
}

// New creates a wizard at the DATE step with a fresh calendar window
func New(opts Options) *Wizard {
	if opts.Submitter == nil {
		opts.Submitter = DelaySubmitter{}
	}
	if opts.SubmitTimeout <= 0 {
		opts.SubmitTimeout = DefaultSubmitTimeout
	}
	if opts.WindowDays <= 0 {
		opts.WindowDays = booking.WindowDays
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	w := &Wizard{
		submitter:     opts.Submitter,
		submitTimeout: opts.SubmitTimeout,
		windowDays:    opts.WindowDays,
		location:      opts.Location,
		metrics:       opts.Metrics,
		now:           opts.Now,
	}
	w.days = w.generateWindow()
	return w
}

func (w *Wizard) generateWindow() booking.Window {
	return booking.NextDays(w.now().In(w.location), w.windowDays)
}

// RefreshWindow recomputes the selectable days from the current time.
// A selected date that fell out of the window is cleared.
func (w *Wizard) RefreshWindow() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.days = w.generateWindow()
	if w.draft.Date != "" && !w.days.Contains(w.draft.Date) && !w.pending() {
		w.draft.Date = ""
		w.attemptKey = ""
		if w.step == StepTime || w.step == StepDetails {
			w.transition(StepDate)
		}
	}
}

func (w *Wizard) transition(to Step) {
	from := w.step
	w.step = to
	w.metrics.ObserveTransition(from.String(), to.String())
}

func (w *Wizard) pending() bool {
	return w.state == SubmissionPending
}

// SelectDate records the chosen day. Only allowed on DATE; the step does not change.
func (w *Wizard) SelectDate(value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepDate {
		return ErrInvalidStep
	}
	if !w.days.Contains(value) {
		return ErrUnknownDate
	}
	if w.draft.Date != value {
		w.draft.Date = value
		w.attemptKey = ""
	}
	return nil
}

// SelectTime records the chosen slot. Only allowed on TIME; the step does not change.
func (w *Wizard) SelectTime(slot string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepTime {
		return ErrInvalidStep
	}
	if !booking.IsValidSlot(slot) {
		return ErrUnknownSlot
	}
	if w.draft.Time != slot {
		w.draft.Time = slot
		w.attemptKey = ""
	}
	return nil
}

// Advance moves DATE→TIME or TIME→DETAILS. An unmet guard leaves the
// wizard untouched and returns ErrGuardUnmet.
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepDate:
		if w.draft.Date == "" {
			return ErrGuardUnmet
		}
		w.transition(StepTime)
	case StepTime:
		if w.draft.Time == "" {
			return ErrGuardUnmet
		}
		w.transition(StepDetails)
	default:
		return ErrInvalidStep
	}
	return nil
}

// Back moves TIME→DATE or DETAILS→TIME
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending() {
		return ErrSubmissionPending
	}
	switch w.step {
	case StepTime:
		w.transition(StepDate)
	case StepDetails:
		w.transition(StepTime)
	default:
		return ErrInvalidStep
	}
	return nil
}

// SetDetails updates the contact fields. Only allowed on DETAILS.
func (w *Wizard) SetDetails(name, email, message string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepDetails {
		return ErrInvalidStep
	}
	if w.pending() {
		return ErrSubmissionPending
	}
	if w.draft.FullName != name || w.draft.Email != email || w.draft.Message != message {
		w.draft.FullName = name
		w.draft.Email = email
		w.draft.Message = message
		w.attemptKey = ""
	}
	return nil
}

// CanAdvance reports whether the advance action is enabled
func (w *Wizard) CanAdvance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canAdvance()
}

func (w *Wizard) canAdvance() bool {
	switch w.step {
	case StepDate:
		return w.draft.Date != ""
	case StepTime:
		return w.draft.Time != ""
	default:
		return false
	}
}

// CanSubmit reports whether the submit action is enabled
func (w *Wizard) CanSubmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canSubmit()
}

func (w *Wizard) canSubmit() bool {
	return w.step == StepDetails &&
		!w.pending() &&
		w.draft.Date != "" &&
		w.draft.Time != "" &&
		w.draft.hasContact()
}

// Step returns the active step
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Snapshot returns the current state for rendering
func (w *Wizard) Snapshot() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	v := View{
		Step:       w.step,
		Submission: w.state,
		Draft:      w.draft,
		Days:       append([]booking.CalendarDay(nil), w.days...),
		Slots:      booking.TimeSlots(),
		Timezone:   booking.SlotTimezoneLabel,
		CanAdvance: w.canAdvance(),
		CanGoBack:  !w.pending() && (w.step == StepTime || w.step == StepDetails),
		CanSubmit:  w.canSubmit(),
		LastError:  w.lastError,
	}
	if w.result != nil {
		res := *w.result
		v.Confirmation = &res
	}
	return v
}

// DismissError clears the inline submission error
func (w *Wizard) DismissError() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastError = ""
	if w.state == SubmissionFailed {
		w.state = SubmissionIdle
	}
}

// Reset returns to DATE with an empty draft and abandons any in-flight submission
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

func (w *Wizard) reset() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.epoch++
	if w.step != StepDate {
		w.transition(StepDate)
	}
	w.draft = Draft{}
	w.state = SubmissionIdle
	w.lastError = ""
	w.result = nil
	w.attemptKey = ""
}

// Submit sends the draft once. While the call is in flight the wizard is
// PENDING and further submits return ErrSubmissionPending. A failure returns
// to DETAILS with the fields intact and an error wrapping ErrSubmissionFailed.
// If the wizard is reset before the call returns, the result is dropped and
// ErrAbandoned is returned.
func (w *Wizard) Submit(ctx context.Context) (Result, error) {
	w.mu.Lock()
	if w.pending() {
		w.mu.Unlock()
		return Result{}, ErrSubmissionPending
	}
	if w.step != StepDetails {
		w.mu.Unlock()
		return Result{}, ErrInvalidStep
	}
	if w.draft.Date == "" || w.draft.Time == "" {
		w.mu.Unlock()
		return Result{}, ErrGuardUnmet
	}
	if fields := w.draft.Validate(); len(fields) > 0 {
		w.mu.Unlock()
		return Result{}, &ValidationError{Fields: fields}
	}

	if w.attemptKey == "" {
		w.attemptKey = uuid.NewString()
	}
	payload := Payload{
		Date:           w.draft.Date,
		Time:           w.draft.Time,
		Name:           strings.TrimSpace(w.draft.FullName),
		Email:          strings.TrimSpace(w.draft.Email),
		Message:        strings.TrimSpace(w.draft.Message),
		IdempotencyKey: w.attemptKey,
	}

	w.state = SubmissionPending
	w.lastError = ""
	epoch := w.epoch
	subCtx, cancel := context.WithTimeout(ctx, w.submitTimeout)
	w.cancel = cancel
	submitter := w.submitter
	w.mu.Unlock()

	started := time.Now()
	res, err := submitter.Submit(subCtx, payload)
	elapsed := time.Since(started).Seconds()
	timedOut := errors.Is(subCtx.Err(), context.DeadlineExceeded)
	cancel()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.epoch != epoch {
		w.metrics.ObserveSubmitLatency("abandoned", elapsed)
		return Result{}, ErrAbandoned
	}
	w.cancel = nil

	if err != nil {
		w.metrics.ObserveSubmitLatency("failed", elapsed)
		w.state = SubmissionFailed
		w.lastError = failureReason(err, timedOut)
		log.Warn().Err(err).Bool("timeout", timedOut).Msg("Booking submission failed")
		return Result{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	w.metrics.ObserveSubmitLatency("succeeded", elapsed)
	if res.Message == "" {
		res.Message = ConfirmationMessage
	}
	w.state = SubmissionSucceeded
	w.result = &res
	w.transition(StepSuccess)
	return res, nil
}

func failureReason(err error, timedOut bool) string {
	var rejected *RejectedError
	switch {
	case errors.As(err, &rejected) && rejected.Reason != "":
		return rejected.Reason
	case timedOut || errors.Is(err, context.DeadlineExceeded):
		return timeoutReason
	default:
		return genericReason
	}
}
