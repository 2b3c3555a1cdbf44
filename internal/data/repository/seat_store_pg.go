package repository

import (
	"context"
	"fmt"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type pgSeatStore struct {
	db  database.PgxIface
	now func() time.Time
	log *zap.Logger
}

// NewPostgresSeatStore keeps seat ownership in the showtime_seats table.
func NewPostgresSeatStore(db database.PgxIface, now func() time.Time, log *zap.Logger) SeatStore {
	return &pgSeatStore{
		db:  db,
		now: nowOrDefault(now),
		log: log.With(zap.String("repository", "seat_store_pg")),
	}
}

// An existing row is only taken over when it is an elapsed hold or the same booking's hold.
const holdSeatsQuery = `
	INSERT INTO showtime_seats (showtime_id, seat_number, booking_id, status, expires_at)
	SELECT $1, s, $2, 'held', $3 FROM unnest($4::int[]) AS s
	ON CONFLICT (showtime_id, seat_number) DO UPDATE
	SET booking_id = EXCLUDED.booking_id, status = 'held', expires_at = EXCLUDED.expires_at
	WHERE showtime_seats.status = 'held'
	  AND (showtime_seats.booking_id = EXCLUDED.booking_id OR showtime_seats.expires_at <= $5)
`

func (s *pgSeatStore) TryHoldSeats(ctx context.Context, showtimeID, bookingID uuid.UUID, seats []int, holdDuration time.Duration) (*entity.SeatHold, error) {
	if err := validateSeats(seats); err != nil {
		return nil, err
	}

	now := s.now()
	expiresAt := holdExpiry(now, holdDuration)

	err := database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, holdSeatsQuery, showtimeID, bookingID, expiresAt, toInt32s(seats), now)
		if err != nil {
			s.log.Error("Failed to hold seats",
				zap.Error(err),
				zap.String("showtime_id", showtimeID.String()),
				zap.Ints("seats", seats),
			)
			return fmt.Errorf("hold seats for showtime %s: %w", showtimeID.String(), err)
		}

		if int(tag.RowsAffected()) == len(seats) {
			return nil
		}

		taken, err := s.takenSeats(ctx, tx, showtimeID, bookingID, seats, now)
		if err != nil {
			return err
		}
		return &SeatsUnavailableError{Seats: taken}
	})
	if err != nil {
		return nil, err
	}

	return &entity.SeatHold{
		ShowtimeID: showtimeID,
		BookingID:  bookingID,
		Seats:      append([]int(nil), seats...),
		ExpiresAt:  expiresAt,
	}, nil
}

func (s *pgSeatStore) takenSeats(ctx context.Context, tx pgx.Tx, showtimeID, bookingID uuid.UUID, seats []int, now time.Time) ([]int, error) {
	query := `
		SELECT seat_number FROM showtime_seats
		WHERE showtime_id = $1 AND seat_number = ANY($2::int[])
		  AND (status = 'booked' OR (booking_id <> $3 AND expires_at > $4))
		ORDER BY seat_number
	`

	rows, err := tx.Query(ctx, query, showtimeID, toInt32s(seats), bookingID, now)
	if err != nil {
		return nil, fmt.Errorf("find taken seats for showtime %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	var taken []int
	for rows.Next() {
		var n int32
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan taken seat: %w", err)
		}
		taken = append(taken, int(n))
	}
	return taken, rows.Err()
}

func (s *pgSeatStore) ConfirmSeats(ctx context.Context, showtimeID, bookingID uuid.UUID, seats []int) error {
	if err := validateSeats(seats); err != nil {
		return err
	}

	query := `
		UPDATE showtime_seats SET status = 'booked', expires_at = NULL
		WHERE showtime_id = $1 AND booking_id = $2 AND seat_number = ANY($3::int[])
		  AND (status = 'booked' OR expires_at > $4)
	`

	return database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, showtimeID, bookingID, toInt32s(seats), s.now())
		if err != nil {
			s.log.Error("Failed to confirm seats",
				zap.Error(err),
				zap.String("showtime_id", showtimeID.String()),
				zap.String("booking_id", bookingID.String()),
			)
			return fmt.Errorf("confirm seats for booking %s: %w", bookingID.String(), err)
		}

		if int(tag.RowsAffected()) != len(seats) {
			return fmt.Errorf("confirm seats for booking %s: %w", bookingID.String(), ErrHoldExpired)
		}
		return nil
	})
}

func (s *pgSeatStore) ReleaseSeats(ctx context.Context, showtimeID, bookingID uuid.UUID, seats []int) (int, error) {
	query := `
		DELETE FROM showtime_seats
		WHERE showtime_id = $1 AND booking_id = $2 AND seat_number = ANY($3::int[])
	`

	tag, err := s.db.Exec(ctx, query, showtimeID, bookingID, toInt32s(seats))
	if err != nil {
		s.log.Error("Failed to release seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
			zap.String("booking_id", bookingID.String()),
		)
		return 0, fmt.Errorf("release seats for booking %s: %w", bookingID.String(), err)
	}

	return int(tag.RowsAffected()), nil
}

func (s *pgSeatStore) Snapshot(ctx context.Context, showtimeID uuid.UUID) ([]entity.SeatState, error) {
	query := `
		SELECT seat_number, booking_id, status, expires_at
		FROM showtime_seats
		WHERE showtime_id = $1 AND (status = 'booked' OR expires_at > $2)
		ORDER BY seat_number
	`

	rows, err := s.db.Query(ctx, query, showtimeID, s.now())
	if err != nil {
		s.log.Error("Failed to snapshot seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("snapshot seats for showtime %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	var states []entity.SeatState
	for rows.Next() {
		var (
			st        entity.SeatState
			seat      int32
			expiresAt *time.Time
		)
		if err := rows.Scan(&seat, &st.BookingID, &st.Status, &expiresAt); err != nil {
			return nil, fmt.Errorf("scan seat state: %w", err)
		}
		st.SeatNumber = int(seat)
		if expiresAt != nil {
			st.ExpiresAt = *expiresAt
		}
		states = append(states, st)
	}

	return states, rows.Err()
}

// Same merge rule as the Redis store: only free or elapsed seats are taken, and a
// restored booking also replaces a hold.
const restoreSeatQuery = `
	INSERT INTO showtime_seats (showtime_id, seat_number, booking_id, status, expires_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (showtime_id, seat_number) DO UPDATE
	SET booking_id = EXCLUDED.booking_id, status = EXCLUDED.status, expires_at = EXCLUDED.expires_at
	WHERE showtime_seats.status = 'held'
	  AND (showtime_seats.expires_at <= $6 OR EXCLUDED.status = 'booked')
`

func (s *pgSeatStore) Restore(ctx context.Context, showtimeID uuid.UUID, states []entity.SeatState) error {
	if len(states) == 0 {
		return nil
	}

	now := s.now()
	batch := &pgx.Batch{}
	for _, st := range states {
		var expiresAt *time.Time
		if st.Status == entity.SeatStatusHeld {
			exp := st.ExpiresAt
			expiresAt = &exp
		}
		batch.Queue(restoreSeatQuery, showtimeID, int32(st.SeatNumber), st.BookingID, string(st.Status), expiresAt, now)
	}

	return database.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			s.log.Error("Failed to restore seats",
				zap.Error(err),
				zap.String("showtime_id", showtimeID.String()),
			)
			return fmt.Errorf("restore seats for showtime %s: %w", showtimeID.String(), err)
		}
		return nil
	})
}
