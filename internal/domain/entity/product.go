// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Product,
// Settings and Video, along with their validation rules and domain-specific errors.
package entity

import (
	"strings"
	"time"
)

// Product represents a catalogued affiliate product.
// Caption and Hashtags are derived fields: they are either both empty
// (nothing generated yet) or both written by the most recent generation run.
type Product struct {
	ID            int64
	Title         string
	Category      string
	Price         string
	AffiliateLink string
	ImageURLs     string // one URL per line
	Notes         string
	Caption       string
	Hashtags      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ImageURLList splits the newline-separated ImageURLs field into an ordered
// slice, dropping blank lines.
func (p *Product) ImageURLList() []string {
	var urls []string
	for _, line := range strings.Split(p.ImageURLs, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}

// Generated reports whether caption and hashtags have been produced for this
// product.
func (p *Product) Generated() bool {
	return p.Caption != "" && p.Hashtags != ""
}

// Validate checks the product fields that must hold before persisting.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if p.AffiliateLink != "" {
		if err := ValidateURL(p.AffiliateLink); err != nil {
			return err
		}
	}
	return nil
}
