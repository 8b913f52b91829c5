package repository

import (
	"context"

	"promo-studio/internal/domain/entity"
)

type SettingsRepository interface {
	// Get returns the single active settings row, creating it with defaults
	// on first access.
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, settings *entity.Settings) error
}
