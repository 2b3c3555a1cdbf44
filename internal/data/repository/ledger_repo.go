package repository

import (
	"context"
	"fmt"

	"seat-booking/internal/data/entity"
	"seat-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// LedgerRepository is the append-only record of seat transitions.
type LedgerRepository interface {
	Append(ctx context.Context, entry *entity.LedgerEntry) error
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*entity.LedgerEntry, error)
	FindByShowtime(ctx context.Context, showtimeID uuid.UUID) ([]*entity.LedgerEntry, error)
	HasKind(ctx context.Context, bookingID uuid.UUID, kind entity.LedgerKind) (bool, error)
}

type ledgerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLedgerRepository(db database.PgxIface, log *zap.Logger) LedgerRepository {
	return &ledgerRepository{
		db:  db,
		log: log.With(zap.String("repository", "ledger")),
	}
}

const ledgerColumns = `id, booking_id, showtime_id, seats, kind, reason, expires_at, created_at`

func (r *ledgerRepository) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO reservation_ledger (booking_id, showtime_id, seats, kind, reason, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		entry.BookingID,
		entry.ShowtimeID,
		toInt32s(entry.Seats),
		entry.Kind,
		entry.Reason,
		entry.ExpiresAt,
		entry.CreatedAt,
	).Scan(&entry.ID)

	if err != nil {
		r.log.Error("Failed to append ledger entry",
			zap.Error(err),
			zap.String("booking_id", entry.BookingID.String()),
			zap.String("kind", string(entry.Kind)),
		)
		return fmt.Errorf("append ledger %s for booking %s: %w", entry.Kind, entry.BookingID.String(), err)
	}

	return nil
}

func (r *ledgerRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM reservation_ledger WHERE booking_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find ledger by booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find ledger by booking %s: %w", bookingID.String(), err)
	}

	return r.scanAll(rows)
}

func (r *ledgerRepository) FindByShowtime(ctx context.Context, showtimeID uuid.UUID) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM reservation_ledger WHERE showtime_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, showtimeID)
	if err != nil {
		r.log.Error("Failed to find ledger by showtime",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("find ledger by showtime %s: %w", showtimeID.String(), err)
	}

	return r.scanAll(rows)
}

func (r *ledgerRepository) HasKind(ctx context.Context, bookingID uuid.UUID, kind entity.LedgerKind) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reservation_ledger WHERE booking_id = $1 AND kind = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, bookingID, kind).Scan(&exists); err != nil {
		r.log.Error("Failed to check ledger kind",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("kind", string(kind)),
		)
		return false, fmt.Errorf("check ledger %s for booking %s: %w", kind, bookingID.String(), err)
	}

	return exists, nil
}

func (r *ledgerRepository) scanAll(rows pgx.Rows) ([]*entity.LedgerEntry, error) {
	defer rows.Close()

	var entries []*entity.LedgerEntry
	for rows.Next() {
		var (
			e     entity.LedgerEntry
			seats []int32
		)
		err := rows.Scan(
			&e.ID,
			&e.BookingID,
			&e.ShowtimeID,
			&seats,
			&e.Kind,
			&e.Reason,
			&e.ExpiresAt,
			&e.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ledger row", zap.Error(err))
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		e.Seats = fromInt32s(seats)
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
