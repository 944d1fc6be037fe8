package booking

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidDate         = errors.New("invalid booking date")
	ErrDateOutOfWindow     = errors.New("date is outside the booking window")
	ErrInvalidSlot         = errors.New("time is not a bookable slot")
	ErrSlotInPast          = errors.New("time slot has already passed")
	ErrDuplicateSubmission = errors.New("booking request already received")
	ErrAlreadyFinal        = errors.New("booking is already confirmed or cancelled")
)
