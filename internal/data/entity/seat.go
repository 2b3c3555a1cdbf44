package entity

import (
	"time"

	"github.com/google/uuid"
)

type SeatStatus string

const (
	SeatStatusHeld   SeatStatus = "held"
	SeatStatusBooked SeatStatus = "booked"
)

// SeatHold is returned by a successful hold. It is owned by BookingID
// until ExpiresAt unless confirmed first.
type SeatHold struct {
	ShowtimeID uuid.UUID
	BookingID  uuid.UUID
	Seats      []int
	ExpiresAt  time.Time
}

// SeatState is the owner of one seat. ExpiresAt is zero for booked seats.
type SeatState struct {
	SeatNumber int
	BookingID  uuid.UUID
	Status     SeatStatus
	ExpiresAt  time.Time
}

// Active reports whether the seat is still claimed at now.
func (s SeatState) Active(now time.Time) bool {
	return s.Status == SeatStatusBooked || now.Before(s.ExpiresAt)
}
