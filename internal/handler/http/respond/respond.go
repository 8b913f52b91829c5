// Package respond provides helpers for writing JSON responses and for
// returning errors without leaking internal details to clients.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers already sent, can only log
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// AppError carries a message safe to show the operator alongside the
// internal error that caused it.
type AppError struct {
	UserMsg string
	Err     error
	Code    int
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given status code, user-facing
// message and internal cause.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// safeMarkers are substrings of error messages that are safe to show to
// clients: validation failures and the extraction messages written for the
// operator. Anything else is assumed to carry internal detail.
var safeMarkers = []string{
	"required",
	"invalid",
	"not found",
	"must be",
	"must not be",
	"cannot be",
	"too long",
	"não foi possível",
}

// SafeError writes an error response, deciding what the client may see.
// An AppError returns its user message with its own status code. Other
// errors are returned verbatim only when they look like validation errors;
// everything else is logged sanitized and replaced with a generic message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			slog.Default().Error("application error",
				slog.String("status", http.StatusText(appErr.Code)),
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.String("error", SanitizeError(appErr.Err)))
		}
		JSON(w, appErr.Code, map[string]string{"error": appErr.UserMsg})
		return
	}

	msg := err.Error()
	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, marker := range safeMarkers {
		if strings.Contains(lowerMsg, marker) {
			isSafe = true
			break
		}
	}
	// 5xx never exposes the original message
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
