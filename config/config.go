// Package config loads portal settings from the environment.
// File: config/config.go
package config

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/hkdf"
)

// defaultSessionSecret is only acceptable outside production.
const defaultSessionSecret = "dev-only-session-secret" // #nosec G101

// Config holds every runtime setting of the portal.
type Config struct {
	Port           string
	Env            string
	ApplicationURL string
	BackendURL     string
	BackendTimeout time.Duration

	SessionName   string
	SessionSecret string
	SecureCookies bool

	LogDir       string
	TemplatesDir string
	StaticDir    string

	LoginRateLimit float64
	LoginBurst     int

	CloudWatchEnabled bool
	MetricsNamespace  string
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:             envOr("PORT", "8080"),
		Env:              envOr("APP_ENV", "development"),
		ApplicationURL:   strings.TrimRight(envOr("APPLICATION_URL", "http://localhost:8080"), "/"),
		BackendURL:       strings.TrimRight(envOr("BACKEND_URL", "http://localhost:8000"), "/"),
		SessionName:      envOr("SESSION_NAME", "eventsession"),
		SessionSecret:    envOr("SESSION_SECRET", defaultSessionSecret),
		LogDir:           os.Getenv("LOG_DIR"),
		TemplatesDir:     envOr("TEMPLATES_DIR", "./templates"),
		StaticDir:        envOr("STATIC_DIR", "./static"),
		MetricsNamespace: envOr("METRICS_NAMESPACE", "EventPortal"),
	}

	var err error
	if cfg.BackendTimeout, err = time.ParseDuration(envOr("BACKEND_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}
	if cfg.LoginRateLimit, err = strconv.ParseFloat(envOr("LOGIN_RATE_LIMIT", "0.5"), 64); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_LIMIT: %w", err)
	}
	if cfg.LoginBurst, err = strconv.Atoi(envOr("LOGIN_BURST", "5")); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_BURST: %w", err)
	}
	if cfg.CloudWatchEnabled, err = strconv.ParseBool(envOr("CLOUDWATCH_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("invalid CLOUDWATCH_ENABLED: %w", err)
	}

	cfg.SecureCookies = cfg.IsProduction()
	if cfg.IsProduction() && cfg.SessionSecret == defaultSessionSecret {
		return nil, errors.New("SESSION_SECRET must be set in production")
	}
	return cfg, nil
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// SessionKeys derives the cookie signing key and the AES-256 encryption key
// from SessionSecret.
func (c *Config) SessionKeys() (authKey, encKey []byte, err error) {
	r := hkdf.New(sha256.New, []byte(c.SessionSecret), nil, []byte("go-event-portal session cookie"))
	authKey = make([]byte, 32)
	encKey = make([]byte, 32)
	if _, err = io.ReadFull(r, authKey); err != nil {
		return nil, nil, err
	}
	if _, err = io.ReadFull(r, encKey); err != nil {
		return nil, nil, err
	}
	return authKey, encKey, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
