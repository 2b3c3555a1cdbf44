package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

func (s *bookingService) ExpireStaleBookings(ctx context.Context, now time.Time) (int, error) {
	expired := 0
	for {
		bookings, err := s.repo.Booking.FindExpiredOpen(ctx, now, s.opts.SweepBatch)
		if err != nil {
			return expired, fmt.Errorf("find expired bookings: %w", err)
		}

		for _, b := range bookings {
			if err := s.expireBooking(ctx, b); err != nil {
				return expired, err
			}
			expired++
		}

		if len(bookings) < s.opts.SweepBatch {
			return expired, nil
		}
	}
}

// RunSweeper expires stale bookings every interval until ctx is done.
func (s *bookingService) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info("Expiry sweeper started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Expiry sweeper stopped")
			return nil
		case <-ticker.C:
			n, err := s.ExpireStaleBookings(ctx, s.opts.Now())
			if err != nil {
				s.log.Error("Expiry sweep failed", zap.Error(err), zap.Int("expired", n))
				continue
			}
			if n > 0 {
				s.log.Info("Expired stale bookings", zap.Int("expired", n))
			}
		}
	}
}
