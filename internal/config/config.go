// Package config loads portal settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the portal's runtime settings.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	APIBaseURL      string        `env:"API_BASE_URL" envDefault:"http://localhost:8000"`
	DefaultLocale   string        `env:"DEFAULT_LOCALE" envDefault:"en"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"0s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file, then parses and validates the
// environment.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid API_BASE_URL (%q): %w", c.APIBaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid API_BASE_URL (%q): missing scheme or host", c.APIBaseURL)
	}

	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("config: PORT must not be empty")
	}
	if c.SessionTTL < 0 || c.UpstreamTimeout < 0 || c.ShutdownTimeout < 0 {
		return fmt.Errorf("config: durations must not be negative")
	}
	return nil
}
