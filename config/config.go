// Package config loads application configuration from the environment.
package config

import "time"

// Server holds the HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// Log configures the structured logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ledger]"`
}

// DB holds the Postgres connection string.
type DB struct {
	Url string `envconfig:"URL"`
}

// Jwt configures token issuance for the auth endpoints.
type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

// RateLimit bounds requests per client IP.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Accrual configures the interest scheduler. Rate is applied once per cycle;
// CapFactor bounds each balance at a multiple of its initial deposit.
type Accrual struct {
	Interval  time.Duration `envconfig:"INTERVAL" default:"60s"`
	Rate      float64       `envconfig:"RATE" default:"0.05"`
	CapFactor float64       `envconfig:"CAP_FACTOR" default:"2.07"`
}

// App is the root configuration.
type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Jwt       *Jwt       `envconfig:"JWT"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Accrual   *Accrual   `envconfig:"ACCRUAL"`
}
