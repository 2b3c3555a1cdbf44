package request

import "time"

type CreateShowtimeRequest struct {
	MovieID   string    `json:"movie_id" validate:"required,uuid4"`
	TheaterID string    `json:"theater_id" validate:"required,uuid4"`
	StartsAt  time.Time `json:"starts_at" validate:"required"`
	EndsAt    time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	Price     int64     `json:"price" validate:"gt=0"`
	Capacity  int       `json:"capacity" validate:"gt=0,max=1000"`
}
