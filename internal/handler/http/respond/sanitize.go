package respond

import (
	"regexp"
)

var (
	// credentials embedded in connection strings (user:password@host)
	dsnPasswordPattern = regexp.MustCompile(`://([^:/?#]+):([^@/?#]+)@`)

	// bearer tokens quoted back by HTTP clients
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._~+/=-]+`)
)

// SanitizeError returns the error message with credentials masked so it can
// be logged safely.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")
	return msg
}
