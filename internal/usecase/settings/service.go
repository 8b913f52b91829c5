// Package settings provides use cases for the studio's single generation
// configuration.
package settings

import (
	"context"
	"fmt"
	"strings"

	"promo-studio/internal/domain/entity"
	"promo-studio/internal/repository"
)

// UpdateInput carries every editable settings field; the handler maps form
// values onto it wholesale.
type UpdateInput struct {
	FixedHashtags       string
	MaxHashtags         int
	CTA                 string
	AffiliateDisclaimer string
	DefaultPrefix       string
	DefaultSuffix       string
}

// Service provides settings use cases backed by the settings repository.
type Service struct {
	Repo repository.SettingsRepository
}

// Load returns the active settings, creating the defaults on first access.
func (s *Service) Load(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// Update overwrites the active settings with the provided input.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Settings, error) {
	settings, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	settings.FixedHashtags = strings.TrimSpace(in.FixedHashtags)
	settings.MaxHashtags = in.MaxHashtags
	settings.CTA = strings.TrimSpace(in.CTA)
	settings.AffiliateDisclaimer = strings.TrimSpace(in.AffiliateDisclaimer)
	settings.DefaultPrefix = strings.TrimSpace(in.DefaultPrefix)
	settings.DefaultSuffix = strings.TrimSpace(in.DefaultSuffix)

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return settings, nil
}
