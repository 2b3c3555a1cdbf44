package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"seat-booking/cmd"
	"seat-booking/internal/data/repository"
	"seat-booking/internal/event"
	"seat-booking/internal/gateway"
	"seat-booking/internal/wire"
	"seat-booking/pkg/database"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const recoveryShowtimeLimit = 500

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("seat_store", config.Booking.SeatStore),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to apply schema", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	// Seat store
	var seats repository.SeatStore
	switch config.Booking.SeatStore {
	case utils.SeatStoreRedis:
		rdb, err := database.InitRedis(config.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		seats = repository.NewRedisSeatStore(rdb, config.Redis.Prefix, nil, logger)
	default:
		seats = repository.NewPostgresSeatStore(db, nil, logger)
	}

	repos := repository.NewRepository(db, seats, logger)

	// Booking events
	publisher := event.NewNoopPublisher()
	if config.RabbitMQ.URL != "" {
		publisher, err = event.NewAMQPPublisher(config.RabbitMQ.URL, config.RabbitMQ.Exchange, logger)
		if err != nil {
			logger.Fatal("Failed to connect to rabbitmq", zap.Error(err))
		}
	}
	defer publisher.Close()

	payments := gateway.NewSimulated(gateway.Options{
		FailureRate: config.Payment.FailureRate,
		Latency:     config.Payment.Latency,
	}, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, payments, publisher, config, logger)

	// Redis holds no durable copy of seat state; rebuild it from the ledger.
	if config.Booking.SeatStore == utils.SeatStoreRedis {
		rebuildSeatState(ctx, app, logger)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return cmd.APIServer(gctx, app.Router, config.App.Port, logger)
	})
	g.Go(func() error {
		return app.Service.Booking.RunSweeper(gctx, config.Booking.SweepInterval)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application stopped with error", zap.Error(err))
		return
	}
	logger.Info("Application stopped")
}

func rebuildSeatState(ctx context.Context, app *wire.App, logger *zap.Logger) {
	showtimes, err := app.Service.Showtime.ListUpcoming(ctx, recoveryShowtimeLimit)
	if err != nil {
		logger.Fatal("Failed to list showtimes for seat recovery", zap.Error(err))
	}

	for _, st := range showtimes {
		if _, err := app.Service.Booking.RebuildSeatState(ctx, st.ID); err != nil {
			logger.Fatal("Failed to rebuild seat state",
				zap.Error(err),
				zap.String("showtime_id", st.ID),
			)
		}
	}

	logger.Info("Seat state recovered", zap.Int("showtimes", len(showtimes)))
}
