package entity

import (
	"time"

	"github.com/google/uuid"
)

type LedgerKind string

const (
	LedgerKindHold         LedgerKind = "hold"
	LedgerKindHoldRejected LedgerKind = "hold_rejected"
	LedgerKindConfirm      LedgerKind = "confirm"
	LedgerKindRelease      LedgerKind = "release"
	LedgerKindCancel       LedgerKind = "cancel"
)

// LedgerEntry is one append-only seat transition. ID is the append sequence.
type LedgerEntry struct {
	ID         int64      `db:"id"`
	BookingID  uuid.UUID  `db:"booking_id"`
	ShowtimeID uuid.UUID  `db:"showtime_id"`
	Seats      []int      `db:"seats"`
	Kind       LedgerKind `db:"kind"`
	Reason     string     `db:"reason"`
	ExpiresAt  *time.Time `db:"expires_at"`
	CreatedAt  time.Time  `db:"created_at"`
}
