package repository

import (
	"context"

	"promo-studio/internal/domain/entity"
)

type VideoRepository interface {
	Get(ctx context.Context, id int64) (*entity.Video, error)
	// List returns all videos ordered by updated_at DESC.
	List(ctx context.Context) ([]*entity.Video, error)
	Create(ctx context.Context, video *entity.Video) error
	IncrementViews(ctx context.Context, id int64) error
	ResetViews(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
