package request

type CreateBookingRequest struct {
	ShowtimeID string `json:"showtime_id" validate:"required,uuid4"`
	Seats      []int  `json:"seats" validate:"required,min=1,max=50,unique,dive,gt=0"`
}

type PayBookingRequest struct {
	Method string `json:"method" validate:"required,oneof=card ewallet bank_transfer"`
}

// ConfirmPaymentRequest carries a payment result reported by the provider.
type ConfirmPaymentRequest struct {
	Amount        int64  `json:"amount" validate:"gt=0"`
	Method        string `json:"method" validate:"required,oneof=card ewallet bank_transfer"`
	Status        string `json:"status" validate:"required,oneof=completed failed"`
	TransactionID string `json:"transaction_id" validate:"max=128"`
}
