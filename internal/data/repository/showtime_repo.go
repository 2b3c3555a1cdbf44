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

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*entity.Showtime, error)
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

const showtimeColumns = `id, movie_id, theater_id, starts_at, ends_at, price, capacity, created_at, updated_at`

func scanShowtime(row pgx.Row) (*entity.Showtime, error) {
	var s entity.Showtime
	err := row.Scan(
		&s.ID,
		&s.MovieID,
		&s.TheaterID,
		&s.StartsAt,
		&s.EndsAt,
		&s.Price,
		&s.Capacity,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (` + showtimeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.TheaterID,
		showtime.StartsAt,
		showtime.EndsAt,
		showtime.Price,
		showtime.Capacity,
		showtime.CreatedAt,
		showtime.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
			zap.String("theater_id", showtime.TheaterID.String()),
		)
		return fmt.Errorf("create showtime %s: %w", showtime.ID.String(), err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `SELECT ` + showtimeColumns + ` FROM showtimes WHERE id = $1`

	showtime, err := scanShowtime(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime by ID %s: %w", id.String(), err)
	}

	return showtime, nil
}

func (r *showtimeRepository) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*entity.Showtime, error) {
	query := `
		SELECT ` + showtimeColumns + `
		FROM showtimes
		WHERE ends_at > $1
		ORDER BY starts_at
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		r.log.Error("Failed to list upcoming showtimes", zap.Error(err))
		return nil, fmt.Errorf("list upcoming showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		showtime, err := scanShowtime(rows)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, showtime)
	}

	return showtimes, rows.Err()
}
