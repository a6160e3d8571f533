package booking

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrCancelCompleted  = errors.New("cannot cancel a completed booking")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field violation found in one pass so a
// client can fix its request in a single round trip.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string { return "validation failed" }

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

type ConflictingBooking struct {
	ID            string    `json:"id"`
	BookingNumber string    `json:"booking_number"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
}

// ConflictError reports that the requested window overlaps an existing
// non-cancelled booking on the same listing.
type ConflictError struct {
	RequestedCheckIn  time.Time          `json:"requested_check_in"`
	RequestedCheckOut time.Time          `json:"requested_check_out"`
	Conflicting       ConflictingBooking `json:"conflicting_booking"`
}

func (e *ConflictError) Error() string { return "the selected dates are not available" }
