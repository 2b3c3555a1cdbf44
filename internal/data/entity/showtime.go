package entity

import (
	"time"

	"github.com/google/uuid"
)

// Showtime is a single screening. Seats are numbered 1..Capacity.
type Showtime struct {
	Base
	MovieID   uuid.UUID `db:"movie_id"`
	TheaterID uuid.UUID `db:"theater_id"`
	StartsAt  time.Time `db:"starts_at"`
	EndsAt    time.Time `db:"ends_at"`
	Price     int64     `db:"price"` // per seat, minor currency units
	Capacity  int       `db:"capacity"`
}

// HasSeat reports whether n is a valid seat number for the showtime.
func (s *Showtime) HasSeat(n int) bool {
	return n >= 1 && n <= s.Capacity
}
