package wizard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrGuardUnmet        = errors.New("required selection is missing")
	ErrInvalidStep       = errors.New("action not allowed on the current step")
	ErrUnknownDate       = errors.New("date is not in the booking window")
	ErrUnknownSlot       = errors.New("time is not a bookable slot")
	ErrSubmissionPending = errors.New("submission already in progress")
	ErrSubmissionFailed  = errors.New("submission failed")
	ErrAbandoned         = errors.New("submission abandoned because the dialog was closed")
	ErrDialogClosed      = errors.New("booking dialog is closed")
	ErrSessionNotFound   = errors.New("wizard session not found")
)

// ValidationError carries field-level messages for the DETAILS step
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return fmt.Sprintf("invalid booking details: %s", strings.Join(keys, ", "))
}

// RejectedError is a failure with a reason that can be shown to the user
type RejectedError struct {
	Reason string
	Err    error
}

func (e *RejectedError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}
