package repository

import (
	"seat-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Showtime ShowtimeRepository
	Booking  BookingRepository
	Payment  PaymentRepository
	Ledger   LedgerRepository
	Seats    SeatStore
}

// NewRepository wires the Postgres repositories around the chosen seat store.
func NewRepository(db database.PgxIface, seats SeatStore, log *zap.Logger) *Repository {
	return &Repository{
		Showtime: NewShowtimeRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Payment:  NewPaymentRepository(db, log),
		Ledger:   NewLedgerRepository(db, log),
		Seats:    seats,
	}
}
