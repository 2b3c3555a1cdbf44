package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, SeatStorePostgres, cfg.Booking.SeatStore)
	assert.Equal(t, 10*time.Minute, cfg.Booking.HoldDuration)
	assert.Equal(t, 30*time.Second, cfg.Booking.SweepInterval)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Empty(t, cfg.RabbitMQ.URL)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nSEAT_STORE=redis\nHOLD_DURATION=2m\nREDIS_PREFIX=test\nPAYMENT_CALLBACK_SECRET=cb\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("HOLD_DURATION", "45s")

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, SeatStoreRedis, cfg.Booking.SeatStore)
	assert.Equal(t, "test", cfg.Redis.Prefix)
	assert.Equal(t, 45*time.Second, cfg.Booking.HoldDuration)
	assert.Equal(t, "cb", cfg.Payment.CallbackSecret)
	assert.Empty(t, cfg.App.AdminToken)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("SEAT_STORE", "memcached")
	t.Setenv("HOLD_DURATION", "0s")

	_, err := loadConfig(filepath.Join(t.TempDir(), ".env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEAT_STORE")
	assert.Contains(t, err.Error(), "HOLD_DURATION")
}
