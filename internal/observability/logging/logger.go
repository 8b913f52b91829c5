// Package logging provides structured logging utilities using the standard
// library's log/slog package.
package logging

import (
	"context"
	"log/slog"
	"os"

	"promo-studio/internal/handler/http/requestid"
)

// NewLogger creates a new structured logger with JSON output. The log level
// is controlled via the LOG_LEVEL environment variable (debug enables debug
// logging; anything else means info).
func NewLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel == slog.LevelDebug,
	})

	return slog.New(handler)
}

// WithRequestID returns a new logger that includes the request ID from the
// context, enabling request tracing across log entries.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}
