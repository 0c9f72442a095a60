package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, optionally loading a .env
// file first. Missing .env files are not an error; the process environment
// always wins.
func Load(envFiles ...string) (*App, error) {
	logger := slog.Default()
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using process environment")
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		logger.Warn("env file not loaded, using process environment", "files", envFiles)
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("config loaded",
		"env", cfg.Env,
		"db", maskValue(cfg.DB.Url),
		"accrual_interval", cfg.Accrual.Interval,
		"accrual_rate", cfg.Accrual.Rate,
		"accrual_cap_factor", cfg.Accrual.CapFactor,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:2] + "****" + v[len(v)-4:]
}
