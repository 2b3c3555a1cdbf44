package wire

import (
	"net/http"

	"seat-booking/internal/adaptor"
	"seat-booking/internal/data/repository"
	"seat-booking/internal/event"
	"seat-booking/internal/usecase"
	"seat-booking/pkg/middleware"
	"seat-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router and the services background jobs run against.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

func Wiring(
	repo *repository.Repository,
	gateway usecase.PaymentGateway,
	publisher event.Publisher,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, gateway, publisher, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, config, logger),
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireShowtime(r, handler.Showtime)
	wireBooking(r, handler.Booking, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
