package repository

import (
	"context"

	"promo-studio/internal/domain/entity"
)

type ProductRepository interface {
	Get(ctx context.Context, id int64) (*entity.Product, error)
	// List returns all products ordered by updated_at DESC.
	List(ctx context.Context) ([]*entity.Product, error)
	// Search returns products whose title contains the keyword, ordered by
	// updated_at DESC.
	Search(ctx context.Context, keyword string) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	// UpdateGenerated writes caption and hashtags in a single statement so a
	// product is never persisted half-generated.
	UpdateGenerated(ctx context.Context, id int64, caption, hashtags string) error
	Delete(ctx context.Context, id int64) error
	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)
	// CountReady returns the number of products with a generated caption.
	CountReady(ctx context.Context) (int64, error)
}
