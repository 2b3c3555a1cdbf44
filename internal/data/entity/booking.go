package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingState is the fine-grained lifecycle position of a booking.
type BookingState string

const (
	BookingStateCreated         BookingState = "created"
	BookingStateSeatsHeld       BookingState = "seats_held"
	BookingStateAwaitingPayment BookingState = "awaiting_payment"
	BookingStateConfirmed       BookingState = "confirmed"
	BookingStateCanceled        BookingState = "canceled"
)

// BookingStatus is the coarse status exposed to callers.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

type CancelReason string

const (
	CancelReasonUser          CancelReason = "user"
	CancelReasonExpired       CancelReason = "expired"
	CancelReasonPaymentFailed CancelReason = "payment_failed"
)

type Booking struct {
	Base
	UserID        uuid.UUID     `db:"user_id"`
	ShowtimeID    uuid.UUID     `db:"showtime_id"`
	Seats         []int         `db:"seats"`
	TotalPrice    int64         `db:"total_price"`
	State         BookingState  `db:"state"`
	CancelReason  *CancelReason `db:"cancel_reason"`
	HoldExpiresAt time.Time     `db:"hold_expires_at"`
}

func (b *Booking) Status() BookingStatus {
	switch b.State {
	case BookingStateConfirmed:
		return BookingStatusConfirmed
	case BookingStateCanceled:
		return BookingStatusCanceled
	default:
		return BookingStatusPending
	}
}

// Open reports whether the booking still owns a hold that may be confirmed or released.
func (b *Booking) Open() bool {
	return b.State == BookingStateSeatsHeld || b.State == BookingStateAwaitingPayment
}

// HoldExpired reports whether the hold window has elapsed at now.
func (b *Booking) HoldExpired(now time.Time) bool {
	return !now.Before(b.HoldExpiresAt)
}
