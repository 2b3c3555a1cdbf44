package usecase

import (
	"time"

	"seat-booking/internal/data/repository"
	"seat-booking/internal/event"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Showtime ShowtimeService
	Booking  BookingService
}

func NewService(
	repo *repository.Repository,
	gateway PaymentGateway,
	publisher event.Publisher,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	opts := BookingOptions{
		HoldDuration: config.Booking.HoldDuration,
		SweepBatch:   config.Booking.SweepBatch,
		Now:          time.Now,
	}

	return &Service{
		Showtime: NewShowtimeService(repo, time.Now, log),
		Booking:  NewBookingService(repo, gateway, publisher, opts, log),
	}
}
