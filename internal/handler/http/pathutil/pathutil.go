// Package pathutil parses and normalizes URL path segments shared by the
// HTTP handlers.
package pathutil

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the path's id segment is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// ID parses the {id} wildcard of a routed request as a positive int64.
func ID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// Normalize collapses numeric path segments into a placeholder so metric
// labels keep a bounded cardinality, e.g. /products/123/generate becomes
// /products/{id}/generate.
func Normalize(path string) string {
	segments := strings.Split(path, "/")
	changed := false
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if _, err := strconv.ParseInt(seg, 10, 64); err == nil {
			segments[i] = "{id}"
			changed = true
		}
	}
	if !changed {
		return path
	}
	return strings.Join(segments, "/")
}
