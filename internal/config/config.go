// Package config provides configuration for the chat backend.
package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds the backend configuration. It is parsed once at startup and
// read-only afterwards.
type Config struct {
	// Server settings
	HTTPPort int `env:"HTTP_PORT" envDefault:"8000"`

	// Database
	DatabaseURL string `env:"DATABASE_URL" envDefault:"file:chat.db?cache=shared&mode=rwc"`

	// Upstream completion API
	OpenRouterAPIKey string        `env:"OPENROUTER_API_KEY,required"`
	OpenRouterURL    string        `env:"OPENROUTER_URL" envDefault:"https://openrouter.ai/api/v1"`
	UpstreamTimeout  time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"60s"`

	// Sent upstream as HTTP-Referer / X-Title; the origin is also the CORS
	// allowlist entry.
	FrontendOrigin string `env:"FRONTEND_ORIGIN" envDefault:"http://localhost:5173"`
	AppTitle       string `env:"APP_TITLE" envDefault:"Madlen AI Chat"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
