package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Booking  BookingConfig
	Payment  PaymentConfig
}

type AppConfig struct {
	Name       string
	Port       string
	Debug      bool
	LogPath    string
	AdminToken string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type BookingConfig struct {
	SeatStore     string
	HoldDuration  time.Duration
	SweepInterval time.Duration
	SweepBatch    int
}

type PaymentConfig struct {
	FailureRate    float64
	Latency        time.Duration
	CallbackSecret string
}

const (
	SeatStorePostgres = "postgres"
	SeatStoreRedis    = "redis"
)

// LoadConfig reads .env when present and lets the process environment override it.
func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	v.SetDefault("APP_NAME", "seat-booking")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "seatbook")
	v.SetDefault("RABBITMQ_EXCHANGE", "booking.events")
	v.SetDefault("SEAT_STORE", SeatStorePostgres)
	v.SetDefault("HOLD_DURATION", "10m")
	v.SetDefault("SWEEP_INTERVAL", "30s")
	v.SetDefault("SWEEP_BATCH", 100)
	v.SetDefault("PAYMENT_FAILURE_RATE", 0.0)
	v.SetDefault("PAYMENT_LATENCY", "0s")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:       v.GetString("APP_NAME"),
			Port:       v.GetString("PORT"),
			Debug:      v.GetBool("DEBUG"),
			LogPath:    v.GetString("LOG_PATH"),
			AdminToken: v.GetString("ADMIN_TOKEN"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			Prefix:   v.GetString("REDIS_PREFIX"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
		},
		Booking: BookingConfig{
			SeatStore:     v.GetString("SEAT_STORE"),
			HoldDuration:  v.GetDuration("HOLD_DURATION"),
			SweepInterval: v.GetDuration("SWEEP_INTERVAL"),
			SweepBatch:    v.GetInt("SWEEP_BATCH"),
		},
		Payment: PaymentConfig{
			FailureRate:    v.GetFloat64("PAYMENT_FAILURE_RATE"),
			Latency:        v.GetDuration("PAYMENT_LATENCY"),
			CallbackSecret: v.GetString("PAYMENT_CALLBACK_SECRET"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	var errs []error

	switch c.Booking.SeatStore {
	case SeatStorePostgres, SeatStoreRedis:
	default:
		errs = append(errs, fmt.Errorf("SEAT_STORE must be %q or %q, got %q", SeatStorePostgres, SeatStoreRedis, c.Booking.SeatStore))
	}
	if c.Booking.HoldDuration <= 0 {
		errs = append(errs, errors.New("HOLD_DURATION must be positive"))
	}
	if c.Booking.SweepInterval <= 0 {
		errs = append(errs, errors.New("SWEEP_INTERVAL must be positive"))
	}
	if c.Booking.SweepBatch <= 0 {
		errs = append(errs, errors.New("SWEEP_BATCH must be positive"))
	}
	if c.Payment.FailureRate < 0 || c.Payment.FailureRate > 1 {
		errs = append(errs, errors.New("PAYMENT_FAILURE_RATE must be between 0 and 1"))
	}
	if c.Payment.Latency < 0 {
		errs = append(errs, errors.New("PAYMENT_LATENCY must not be negative"))
	}
	if c.Database.MaxConns <= 0 {
		errs = append(errs, errors.New("DB_MAX_CONNS must be positive"))
	}

	return errors.Join(errs...)
}
