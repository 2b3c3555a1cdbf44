package response

import (
	"time"

	"seat-booking/internal/data/entity"
)

type ShowtimeResponse struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	TheaterID string    `json:"theater_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Price     int64     `json:"price"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

// SeatMapResponse reports seats as seen right now; elapsed holds count as available.
type SeatMapResponse struct {
	ShowtimeID string `json:"showtime_id"`
	Capacity   int    `json:"capacity"`
	Available  []int  `json:"available"`
	Held       []int  `json:"held"`
	Booked     []int  `json:"booked"`
}

type RebuildResponse struct {
	ShowtimeID    string `json:"showtime_id"`
	SeatsRestored int    `json:"seats_restored"`
}

func ShowtimeToResponse(s *entity.Showtime) *ShowtimeResponse {
	return &ShowtimeResponse{
		ID:        s.ID.String(),
		MovieID:   s.MovieID.String(),
		TheaterID: s.TheaterID.String(),
		StartsAt:  s.StartsAt,
		EndsAt:    s.EndsAt,
		Price:     s.Price,
		Capacity:  s.Capacity,
		CreatedAt: s.CreatedAt,
	}
}
