package usecase

import (
	"errors"

	"seat-booking/internal/data/repository"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrShowtimeStarted  = errors.New("showtime already started")
	ErrInvalidState     = errors.New("booking is not in a valid state for this action")
	ErrPaymentFailed    = errors.New("payment failed")
	ErrAmountMismatch   = errors.New("payment amount does not match booking total")
	ErrForbidden        = errors.New("booking belongs to another user")

	// Re-exported so callers of the service need not import the repository.
	ErrSeatsUnavailable = repository.ErrSeatsUnavailable
	ErrHoldExpired      = repository.ErrHoldExpired
)
