package backend

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	envBaseURL = "ADMINFORMS_BACKEND_URL"
	envToken   = "ADMINFORMS_BACKEND_TOKEN"

	defaultBaseURL = "http://localhost:8090"
)

// EnvConfig carries the environment-driven client settings.
type EnvConfig struct {
	BaseURL string
	Token   string
}

// LoadEnv reads client settings from the environment, optionally seeded from
// a .env file in the working directory. Missing values fall back to the
// local development defaults.
func LoadEnv() EnvConfig {
	// A missing .env file is the normal case outside development.
	_ = godotenv.Load()

	return EnvConfig{
		BaseURL: getEnv(envBaseURL, defaultBaseURL),
		Token:   os.Getenv(envToken),
	}
}

// NewFromEnv builds a Client from LoadEnv, applying any extra options after
// the environment-derived ones.
func NewFromEnv(options ...Option) (*Client, error) {
	cfg := LoadEnv()
	opts := make([]Option, 0, len(options)+1)
	if cfg.Token != "" {
		opts = append(opts, WithToken(cfg.Token))
	}
	opts = append(opts, options...)
	return New(cfg.BaseURL, opts...)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
