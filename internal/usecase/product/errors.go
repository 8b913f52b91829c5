// Package product provides use cases for managing affiliate products:
// CRUD, caption/hashtag generation and marketplace import.
package product

import "errors"

// Sentinel errors for product use case operations.
var (
	// ErrProductNotFound indicates that the requested product was not found.
	ErrProductNotFound = errors.New("product not found")
)
