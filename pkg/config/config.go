// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import "time"

// Server holds the HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// DB holds the database connection settings.
type DB struct {
	Url string `envconfig:"URL"`
}

// Jwt holds the access-token signing settings.
type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Issuer string        `envconfig:"ISSUER" default:"ledgerbook"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"15m"`
}

// RefreshToken holds the refresh-token cookie settings.
type RefreshToken struct {
	CookieName string        `envconfig:"COOKIE_NAME" default:"refresh_token"`
	Expiry     time.Duration `envconfig:"EXPIRY" default:"168h"`
}

// RateLimit holds the per-IP request limiter settings.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Log holds the logger settings.
type Log struct {
	Level      string `envconfig:"LEVEL" default:"info"`
	Format     string `envconfig:"FORMAT" default:"text"`
	Prefix     string `envconfig:"PREFIX" default:"ledgerbook"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

// App is the root configuration for the service.
type App struct {
	Env          string       `envconfig:"APP_ENV" default:"development"`
	Server       Server       `envconfig:"SERVER"`
	DB           DB           `envconfig:"DATABASE"`
	Jwt          Jwt          `envconfig:"JWT"`
	RefreshToken RefreshToken `envconfig:"REFRESH_TOKEN"`
	RateLimit    RateLimit    `envconfig:"RATE_LIMIT"`
	Log          Log          `envconfig:"LOG"`
}
