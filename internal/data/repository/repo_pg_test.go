package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"seat-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBookingRepository_FindByIDMissing(t *testing.T) {
	repo := NewBookingRepository(&fakeDB{}, zap.NewNop())

	booking, err := repo.FindByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, booking)
}

func TestBookingRepository_FindByID(t *testing.T) {
	id, user, showtime := uuid.New(), uuid.New(), uuid.New()
	expires := time.Date(2026, 3, 1, 12, 10, 0, 0, time.UTC)
	db := &fakeDB{queryRow: func(string, []any) pgx.Row {
		return fakeRow{values: []any{
			id, user, showtime, []int32{5, 6}, int64(2000), entity.BookingStateSeatsHeld, nil, expires, expires, expires,
		}}
	}}
	repo := NewBookingRepository(db, zap.NewNop())

	booking, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, booking.Seats)
	assert.Equal(t, entity.BookingStateSeatsHeld, booking.State)
	assert.Nil(t, booking.CancelReason)
	assert.Equal(t, expires, booking.HoldExpiresAt)
}

func TestBookingRepository_Transition(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{"matched", "UPDATE 1", true},
		{"lost race", "UPDATE 0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeDB{exec: func(string, []any) (pgconn.CommandTag, error) { return tag(tt.tag), nil }}
			repo := NewBookingRepository(db, zap.NewNop())
			reason := entity.CancelReasonExpired
			id := uuid.New()

			ok, err := repo.Transition(context.Background(), id,
				[]entity.BookingState{entity.BookingStateSeatsHeld, entity.BookingStateAwaitingPayment},
				entity.BookingStateCanceled, &reason)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)

			args := db.calls[0].Args
			assert.Equal(t, id, args[0])
			assert.Equal(t, []string{"seats_held", "awaiting_payment"}, args[1])
			assert.Equal(t, entity.BookingStateCanceled, args[2])
			assert.Equal(t, &reason, args[3])
		})
	}
}

func TestBookingRepository_FindSeatOwners(t *testing.T) {
	showtime := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	db := &fakeDB{}
	repo := NewBookingRepository(db, zap.NewNop())

	bookings, err := repo.FindSeatOwners(context.Background(), showtime, now)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.Contains(t, db.calls[0].SQL, "state = 'confirmed'")
	assert.Contains(t, db.calls[0].SQL, "hold_expires_at > $2")
	assert.Equal(t, []any{showtime, now}, db.calls[0].Args)
}

func TestPaymentRepository_CreateDuplicate(t *testing.T) {
	db := &fakeDB{exec: func(string, []any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, &pgconn.PgError{Code: pgUniqueViolation}
	}}
	repo := NewPaymentRepository(db, zap.NewNop())

	err := repo.Create(context.Background(), &entity.Payment{BookingID: uuid.New()})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestPaymentRepository_CreateFailure(t *testing.T) {
	boom := errors.New("disk full")
	db := &fakeDB{exec: func(string, []any) (pgconn.CommandTag, error) { return pgconn.CommandTag{}, boom }}
	repo := NewPaymentRepository(db, zap.NewNop())

	err := repo.Create(context.Background(), &entity.Payment{BookingID: uuid.New()})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func TestLedgerRepository_AppendSetsID(t *testing.T) {
	db := &fakeDB{queryRow: func(string, []any) pgx.Row {
		return fakeRow{values: []any{int64(42)}}
	}}
	repo := NewLedgerRepository(db, zap.NewNop())

	entry := &entity.LedgerEntry{BookingID: uuid.New(), ShowtimeID: uuid.New(), Seats: []int{1, 3}, Kind: entity.LedgerKindHold}
	require.NoError(t, repo.Append(context.Background(), entry))
	assert.Equal(t, int64(42), entry.ID)
	assert.Equal(t, []int32{1, 3}, db.calls[0].Args[2])
}

func TestLedgerRepository_HasKind(t *testing.T) {
	db := &fakeDB{queryRow: func(string, []any) pgx.Row {
		return fakeRow{values: []any{true}}
	}}
	repo := NewLedgerRepository(db, zap.NewNop())

	found, err := repo.HasKind(context.Background(), uuid.New(), entity.LedgerKindConfirm)
	require.NoError(t, err)
	assert.True(t, found)
}
