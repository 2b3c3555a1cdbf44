package wire

import (
	"seat-booking/internal/adaptor"
	"seat-booking/pkg/middleware"
	"seat-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, config *utils.Config, log *zap.Logger) {
	// ==================== CALLER ROUTES (X-User-ID) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		r.Post("/api/bookings", bookingHandler.CreateBooking)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)
		r.Get("/api/bookings/{id}/ledger", bookingHandler.GetBookingLedger)
		r.Post("/api/bookings/{id}/pay", bookingHandler.PayBooking)
		r.Post("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// ==================== ADMIN ROUTES (X-User-ID + X-Admin-Token) ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSecret(middleware.AdminTokenHeader, config.App.AdminToken, log))
			r.Post("/api/admin/showtimes/{id}/rebuild", bookingHandler.RebuildSeatState)
		})
	})

	// ==================== PAYMENT PROVIDER CALLBACK (X-Callback-Secret) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSecret(middleware.CallbackSecretHeader, config.Payment.CallbackSecret, log))
		r.Post("/api/bookings/{id}/confirm", bookingHandler.ConfirmPayment)
	})
}
