// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
	"suratku-secret-key-change-me-now!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"SURATKU_DB_PATH" envDefault:"./data/suratku.db"`
	SessionSecret string `env:"SURATKU_SESSION_SECRET,required"`
	ServerHost    string `env:"SURATKU_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"SURATKU_SERVER_PORT" envDefault:"50000"`
	Env           string `env:"SURATKU_ENV" envDefault:"development"`
	LogLevel      string `env:"SURATKU_LOG_LEVEL" envDefault:"info"`

	// Extra origins accepted by the cross-origin request check, e.g. "https://surat.example.go.id".
	TrustedOrigins []string `env:"SURATKU_TRUSTED_ORIGINS" envSeparator:","`

	// Login protection
	LoginRateLimit float64 `env:"SURATKU_LOGIN_RATE_LIMIT" envDefault:"0.5"` // attempts per second per IP, <= 0 disables
	LoginBurst     int     `env:"SURATKU_LOGIN_BURST" envDefault:"5"`

	// Event log retention in days
	EventRetentionDays int `env:"SURATKU_EVENT_RETENTION_DAYS" envDefault:"90"`

	// Seeding configuration
	DoSeed bool `env:"SURATKU_DO_SEED" envDefault:"false"` // Create the default admin account
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// LoginRateLimitEnabled reports whether login attempts are throttled per IP.
func (c Config) LoginRateLimitEnabled() bool {
	return c.LoginRateLimit > 0
}

// EventRetention returns how long security events are kept.
func (c Config) EventRetention() time.Duration {
	return time.Duration(c.EventRetentionDays) * 24 * time.Hour
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("SURATKU_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("SURATKU_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if cfg.EventRetentionDays < 1 {
		return nil, fmt.Errorf("SURATKU_EVENT_RETENTION_DAYS must be at least 1, got %d", cfg.EventRetentionDays)
	}

	if cfg.LoginRateLimitEnabled() && cfg.LoginBurst < 1 {
		return nil, fmt.Errorf("SURATKU_LOGIN_BURST must be at least 1 when rate limiting is enabled, got %d", cfg.LoginBurst)
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("SURATKU_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
