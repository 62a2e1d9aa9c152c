// Package config loads client configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting for the client. Command-line
// flags override these values at the composition root.
type Config struct {
	APIHost     string        `env:"FITFORK_API_HOST,default=http://localhost:8000"`
	CachePath   string        `env:"FITFORK_CACHE_PATH"`
	HTTPTimeout time.Duration `env:"FITFORK_HTTP_TIMEOUT,default=30s"`
}

// Load reads configuration from a .env file (if one exists) and the process
// environment.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
