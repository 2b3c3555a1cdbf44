package adaptor

import (
	"errors"
	"net/http"

	"seat-booking/internal/data/repository"
	"seat-booking/internal/usecase"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

// writeServiceError maps service errors onto HTTP responses.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var unavailable *repository.SeatsUnavailableError

	switch {
	case errors.As(err, &unavailable):
		log.Info(operation+" failed - seats unavailable", zap.Ints("seats", unavailable.Seats))
		utils.ResponseConflict(w, "Seats unavailable", map[string]any{"seats": unavailable.Seats})

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "Booking belongs to another user")

	case errors.Is(err, usecase.ErrBookingNotFound), errors.Is(err, usecase.ErrShowtimeNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrSeatsUnavailable),
		errors.Is(err, usecase.ErrInvalidState),
		errors.Is(err, usecase.ErrShowtimeStarted),
		errors.Is(err, usecase.ErrAmountMismatch):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrHoldExpired):
		log.Info(operation+" failed - hold expired", zap.Error(err))
		utils.ResponseGone(w, "Seat hold expired, please start a new booking")

	case errors.Is(err, usecase.ErrPaymentFailed):
		log.Info(operation+" failed - payment failed", zap.Error(err))
		utils.ResponsePaymentRequired(w, "Payment failed, booking canceled")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
