package response

import (
	"time"

	"seat-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	ShowtimeID    string               `json:"showtime_id"`
	Seats         []int                `json:"seats"`
	TotalPrice    int64                `json:"total_price"`
	Status        entity.BookingStatus `json:"status"`
	State         entity.BookingState  `json:"state"`
	CancelReason  *entity.CancelReason `json:"cancel_reason,omitempty"`
	HoldExpiresAt time.Time            `json:"hold_expires_at"`
	Payment       *PaymentResponse     `json:"payment,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	Amount        int64                `json:"amount"`
	Method        entity.PaymentMethod `json:"method"`
	Status        entity.PaymentStatus `json:"status"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

type LedgerEntryResponse struct {
	ID        int64             `json:"id"`
	Kind      entity.LedgerKind `json:"kind"`
	Seats     []int             `json:"seats"`
	Reason    string            `json:"reason,omitempty"`
	ExpiresAt *time.Time        `json:"expires_at,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Helper converters
func BookingToResponse(b *entity.Booking, p *entity.Payment) *BookingResponse {
	resp := &BookingResponse{
		ID:            b.ID.String(),
		UserID:        b.UserID.String(),
		ShowtimeID:    b.ShowtimeID.String(),
		Seats:         b.Seats,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status(),
		State:         b.State,
		CancelReason:  b.CancelReason,
		HoldExpiresAt: b.HoldExpiresAt,
		CreatedAt:     b.CreatedAt,
	}
	if p != nil {
		resp.Payment = &PaymentResponse{
			ID:            p.ID.String(),
			Amount:        p.Amount,
			Method:        p.Method,
			Status:        p.Status,
			TransactionID: p.TransactionID,
			CreatedAt:     p.CreatedAt,
		}
	}
	return resp
}

func LedgerEntryToResponse(e *entity.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:        e.ID,
		Kind:      e.Kind,
		Seats:     e.Seats,
		Reason:    e.Reason,
		ExpiresAt: e.ExpiresAt,
		CreatedAt: e.CreatedAt,
	}
}
