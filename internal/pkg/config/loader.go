// Package config loads configuration values from environment variables with
// validation and fallback. A misconfigured value never crashes the process:
// the default is applied and a warning is logged, so the studio keeps running
// with sane behavior.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// IntValidator checks a parsed integer configuration value.
type IntValidator func(value int) error

// ValidatePositiveInt rejects zero and negative values.
func ValidatePositiveInt(value int) error {
	if value <= 0 {
		return fmt.Errorf("must be positive, got %d", value)
	}
	return nil
}

// ValidateNonNegativeInt rejects negative values.
func ValidateNonNegativeInt(value int) error {
	if value < 0 {
		return fmt.Errorf("must not be negative, got %d", value)
	}
	return nil
}

// LoadEnvString returns the environment variable value, or the default when
// unset. No validation is applied.
func LoadEnvString(envKey, defaultValue string) string {
	if value := os.Getenv(envKey); value != "" {
		return value
	}
	return defaultValue
}

// LoadEnvInt parses an integer environment variable, applying the validator
// when given. Unset, unparseable or invalid values fall back to the default
// with a logged warning.
func LoadEnvInt(envKey string, defaultValue int, validate IntValidator) int {
	raw := os.Getenv(envKey)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		warnFallback(envKey, raw, defaultValue, err)
		return defaultValue
	}
	if validate != nil {
		if err := validate(value); err != nil {
			warnFallback(envKey, raw, defaultValue, err)
			return defaultValue
		}
	}
	return value
}

// LoadEnvDuration parses a duration environment variable ("30s", "5m").
// Unset, unparseable or non-positive values fall back to the default with a
// logged warning.
func LoadEnvDuration(envKey string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(envKey)
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		warnFallback(envKey, raw, defaultValue, err)
		return defaultValue
	}
	if value <= 0 {
		warnFallback(envKey, raw, defaultValue, fmt.Errorf("must be positive, got %s", value))
		return defaultValue
	}
	return value
}

func warnFallback(envKey, raw string, defaultValue any, err error) {
	slog.Warn("invalid configuration value, using default",
		slog.String("env", envKey),
		slog.String("value", raw),
		slog.Any("default", defaultValue),
		slog.Any("error", err))
}
