package adaptor

import (
	"seat-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Showtime *ShowtimeHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}
