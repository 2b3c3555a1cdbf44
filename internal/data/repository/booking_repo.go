package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// Transition moves the booking to `to` only if its current state is one of `from`.
	// It reports false when no row matched.
	Transition(ctx context.Context, id uuid.UUID, from []entity.BookingState, to entity.BookingState, reason *entity.CancelReason) (bool, error)

	// FindExpiredOpen returns held or awaiting bookings whose hold elapsed at now.
	FindExpiredOpen(ctx context.Context, now time.Time, limit int) ([]*entity.Booking, error)

	// FindSeatOwners returns the showtime's confirmed bookings and the open bookings
	// whose hold is still live at now.
	FindSeatOwners(ctx context.Context, showtimeID uuid.UUID, now time.Time) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, showtime_id, seats, total_price, state, cancel_reason, hold_expires_at, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		b     entity.Booking
		seats []int32
	)
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.ShowtimeID,
		&seats,
		&b.TotalPrice,
		&b.State,
		&b.CancelReason,
		&b.HoldExpiresAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Seats = fromInt32s(seats)
	return &b, nil
}

func (r *bookingRepository) scanAll(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.ShowtimeID,
		toInt32s(booking.Seats),
		booking.TotalPrice,
		booking.State,
		booking.CancelReason,
		booking.HoldExpiresAt,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}

	return r.scanAll(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) Transition(ctx context.Context, id uuid.UUID, from []entity.BookingState, to entity.BookingState, reason *entity.CancelReason) (bool, error) {
	query := `
		UPDATE bookings
		SET state = $3, cancel_reason = COALESCE($4, cancel_reason), updated_at = NOW()
		WHERE id = $1 AND state = ANY($2)
	`

	states := make([]string, len(from))
	for i, s := range from {
		states[i] = string(s)
	}

	result, err := r.db.Exec(ctx, query, id, states, to, reason)
	if err != nil {
		r.log.Error("Failed to transition booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("transition booking %s to %s: %w", id.String(), string(to), err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *bookingRepository) FindExpiredOpen(ctx context.Context, now time.Time, limit int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE state IN ('seats_held', 'awaiting_payment') AND hold_expires_at <= $1
		ORDER BY hold_expires_at
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		r.log.Error("Failed to find expired bookings", zap.Error(err))
		return nil, fmt.Errorf("find expired bookings: %w", err)
	}

	return r.scanAll(rows)
}

func (r *bookingRepository) FindSeatOwners(ctx context.Context, showtimeID uuid.UUID, now time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE showtime_id = $1
		  AND (state = 'confirmed'
		       OR (state IN ('seats_held', 'awaiting_payment') AND hold_expires_at > $2))
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, showtimeID, now)
	if err != nil {
		r.log.Error("Failed to find seat owners",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("find seat owners for showtime %s: %w", showtimeID.String(), err)
	}

	return r.scanAll(rows)
}
