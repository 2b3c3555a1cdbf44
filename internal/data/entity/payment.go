package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodEWallet      PaymentMethod = "ewallet"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodEWallet, PaymentMethodBankTransfer:
		return true
	}
	return false
}

type Payment struct {
	Base
	BookingID     uuid.UUID     `db:"booking_id"`
	Amount        int64         `db:"amount"`
	Method        PaymentMethod `db:"method"`
	Status        PaymentStatus `db:"status"`
	TransactionID *string       `db:"transaction_id"`
}

// PaymentResult is what the payment provider reports for one charge.
type PaymentResult struct {
	Amount        int64
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID string
}
