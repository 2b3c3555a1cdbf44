package wire

import (
	"seat-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	r.Route("/api/showtimes", func(r chi.Router) {
		r.Post("/", showtimeHandler.CreateShowtime)
		r.Get("/{id}", showtimeHandler.GetShowtime)

		// seat availability with elapsed holds shown as free
		r.Get("/{id}/seats", showtimeHandler.GetSeatMap)
	})
}
