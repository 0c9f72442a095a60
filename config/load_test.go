package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibank/ledger/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := config.Load("testdata/absent.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Jwt.Expiry)
	assert.Equal(t, 60*time.Second, cfg.Accrual.Interval)
	assert.InDelta(t, 0.05, cfg.Accrual.Rate, 1e-9)
	assert.InDelta(t, 2.07, cfg.Accrual.CapFactor, 1e-9)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://ledger:secret@db:5432/ledger")
	t.Setenv("ACCRUAL_INTERVAL", "250ms")
	t.Setenv("ACCRUAL_RATE", "0.01")

	cfg, err := config.Load("testdata/absent.env")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres://ledger:secret@db:5432/ledger", cfg.DB.Url)
	assert.Equal(t, 250*time.Millisecond, cfg.Accrual.Interval)
	assert.InDelta(t, 0.01, cfg.Accrual.Rate, 1e-9)
}

func TestLoadRequiresJwtSecret(t *testing.T) {
	// Setenv registers the restore, Unsetenv makes the variable truly absent.
	t.Setenv("JWT_SECRET", "placeholder")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := config.Load("testdata/absent.env")
	assert.Error(t, err)
}
