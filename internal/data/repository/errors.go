package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrSeatsUnavailable is returned when any requested seat is already held or booked.
	ErrSeatsUnavailable = errors.New("seats unavailable")
	// ErrHoldExpired is returned when confirming seats whose hold is gone or elapsed.
	ErrHoldExpired = errors.New("hold expired")
	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("duplicate record")
	// ErrInvalidSeats is returned when a seat list is empty, non-positive or repeats a seat.
	ErrInvalidSeats = errors.New("invalid seat list")
)

// SeatsUnavailableError names the seats that blocked a hold.
type SeatsUnavailableError struct {
	Seats []int
}

func (e *SeatsUnavailableError) Error() string {
	parts := make([]string, len(e.Seats))
	for i, s := range e.Seats {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return fmt.Sprintf("seats unavailable: %s", strings.Join(parts, ","))
}

func (e *SeatsUnavailableError) Is(target error) bool {
	return target == ErrSeatsUnavailable
}

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
