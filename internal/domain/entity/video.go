package entity

import (
	"strings"
	"time"
)

// Video tracks a promotional video posted for a marketplace listing and how
// many views it has accumulated against a target.
type Video struct {
	ID           int64
	Title        string
	ShopeeURL    string
	TargetViews  int
	CurrentViews int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the video fields that must hold before persisting.
func (v *Video) Validate() error {
	if strings.TrimSpace(v.ShopeeURL) == "" {
		return &ValidationError{Field: "shopee_url", Message: "is required"}
	}
	if err := ValidateURL(v.ShopeeURL); err != nil {
		return err
	}
	return nil
}
