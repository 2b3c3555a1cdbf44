package repository

import (
	"context"
	"fmt"
	"time"

	"seat-booking/internal/data/entity"

	"github.com/google/uuid"
)

// SeatStore tracks which booking owns each seat of a showtime.
//
// A hold is an explicit expiry timestamp checked on every access: a seat whose
// hold has elapsed is free for a new hold and reported as available, whether or
// not anything has cleaned it up yet. Implementations must make TryHoldSeats
// all-or-nothing and atomic with respect to concurrent callers.
type SeatStore interface {
	// TryHoldSeats claims every seat for bookingID until now+holdDuration, or none of
	// them. It fails with an error matching ErrSeatsUnavailable when any seat is booked
	// or held by another booking. Re-holding seats the booking already holds refreshes them.
	TryHoldSeats(ctx context.Context, showtimeID, bookingID uuid.UUID, seats []int, holdDuration time.Duration) (*entity.SeatHold, error)

	// ConfirmSeats turns the booking's live holds into permanent bookings. Seats the
	// booking already booked are accepted, so repeating the call is harmless. It fails
	// with ErrHoldExpired when any seat is no longer held by the booking.
	ConfirmSeats(ctx context.Context, showtimeID, bookingID uuid.UUID, seats []int) error

	// ReleaseSeats frees the given seats owned by bookingID, expired or not, and
	// returns how many were freed. Seats owned by other bookings are left alone.
	ReleaseSeats(ctx context.Context, showtimeID, bookingID uuid.UUID, seats []int) (int, error)

	// Snapshot returns the seats still claimed at the store's current time.
	Snapshot(ctx context.Context, showtimeID uuid.UUID) ([]entity.SeatState, error)

	// Restore merges states into the showtime's seat ownership atomically. A state is
	// written when its seat is free or its hold has elapsed, and a booked state also
	// replaces a live hold. Booked seats and other live holds already in the store are
	// never removed, so Restore is safe while holds are being taken.
	Restore(ctx context.Context, showtimeID uuid.UUID, states []entity.SeatState) error
}

func validateSeats(seats []int) error {
	if len(seats) == 0 {
		return fmt.Errorf("%w: no seats", ErrInvalidSeats)
	}
	seen := make(map[int]struct{}, len(seats))
	for _, s := range seats {
		if s < 1 {
			return fmt.Errorf("%w: seat %d", ErrInvalidSeats, s)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%w: seat %d repeated", ErrInvalidSeats, s)
		}
		seen[s] = struct{}{}
	}
	return nil
}

// holdExpiry rounds to milliseconds so every backend compares the same instant.
func holdExpiry(now time.Time, d time.Duration) time.Time {
	return now.Add(d).Truncate(time.Millisecond)
}

func nowOrDefault(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
