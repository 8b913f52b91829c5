package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"promo-studio/internal/content"
	"promo-studio/internal/domain/entity"
	"promo-studio/internal/observability/metrics"
	"promo-studio/internal/repository"
)

// Extractor scrapes a marketplace product page into an ExtractedProduct.
// Implemented by the scraper infra package.
type Extractor interface {
	Extract(ctx context.Context, url string) (*entity.ExtractedProduct, error)
}

// CreateInput represents the input parameters for creating a new product.
type CreateInput struct {
	Title         string
	Category      string
	Price         string
	AffiliateLink string
	ImageURLs     string
	Notes         string
}

// UpdateInput represents the input parameters for updating a product. All
// editable fields are replaced wholesale; the derived caption/hashtags fields
// are untouched and only change through Generate.
type UpdateInput struct {
	ID            int64
	Title         string
	Category      string
	Price         string
	AffiliateLink string
	ImageURLs     string
	Notes         string
}

// Stats summarizes the catalog for the dashboard.
type Stats struct {
	Total int64
	Ready int64
}

// Service provides product management use cases. It handles business logic
// for product operations and delegates persistence to the repositories.
type Service struct {
	Repo      repository.ProductRepository
	Settings  repository.SettingsRepository
	Extractor Extractor
}

// List retrieves all products, most recently updated first.
func (s *Service) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Search finds products whose title contains the keyword.
func (s *Service) Search(ctx context.Context, keyword string) ([]*entity.Product, error) {
	products, err := s.Repo.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// Get retrieves a single product. Returns ErrProductNotFound when the ID does
// not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Product, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// Create creates a new product from the provided input.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Product, error) {
	p := &entity.Product{
		Title:         strings.TrimSpace(in.Title),
		Category:      strings.TrimSpace(in.Category),
		Price:         strings.TrimSpace(in.Price),
		AffiliateLink: strings.TrimSpace(in.AffiliateLink),
		ImageURLs:     strings.TrimSpace(in.ImageURLs),
		Notes:         strings.TrimSpace(in.Notes),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Update replaces the editable fields of an existing product.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Product, error) {
	p, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	p.Title = strings.TrimSpace(in.Title)
	p.Category = strings.TrimSpace(in.Category)
	p.Price = strings.TrimSpace(in.Price)
	p.AffiliateLink = strings.TrimSpace(in.AffiliateLink)
	p.ImageURLs = strings.TrimSpace(in.ImageURLs)
	p.Notes = strings.TrimSpace(in.Notes)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// Delete removes a product by its ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Generate derives the caption and hashtag set for one product using the
// active settings and persists both fields together.
func (s *Service) Generate(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	caption, hashtags := content.BuildCaption(settings, p)
	if err := s.Repo.UpdateGenerated(ctx, p.ID, caption, hashtags); err != nil {
		return nil, fmt.Errorf("store generated content: %w", err)
	}
	metrics.RecordCaptionGenerated(hashtags)

	p.Caption = caption
	p.Hashtags = hashtags
	return p, nil
}

// GenerateAll regenerates caption and hashtags for every product and returns
// how many were processed.
func (s *Service) GenerateAll(ctx context.Context) (int, error) {
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("load settings: %w", err)
	}
	products, err := s.Repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list products: %w", err)
	}

	for _, p := range products {
		caption, hashtags := content.BuildCaption(settings, p)
		if err := s.Repo.UpdateGenerated(ctx, p.ID, caption, hashtags); err != nil {
			return 0, fmt.Errorf("store generated content for product %d: %w", p.ID, err)
		}
		metrics.RecordCaptionGenerated(hashtags)
	}
	return len(products), nil
}

// ImportFromURL scrapes a marketplace product page and creates a product
// seeded with the extracted title, price and image list. Extraction errors
// are returned unwrapped so their user-facing message reaches the operator.
func (s *Service) ImportFromURL(ctx context.Context, url string) (*entity.Product, error) {
	url = strings.TrimSpace(url)
	if err := entity.ValidateURL(url); err != nil {
		return nil, err
	}

	start := time.Now()
	extracted, err := s.Extractor.Extract(ctx, url)
	metrics.RecordExtraction(err == nil, time.Since(start))
	if err != nil {
		return nil, err
	}

	p := &entity.Product{
		Title:     extracted.Title,
		Price:     extracted.Price,
		ImageURLs: strings.Join(extracted.ImageURLs, "\n"),
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create imported product: %w", err)
	}
	return p, nil
}

// Stats returns catalog totals for the dashboard view.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	ready, err := s.Repo.CountReady(ctx)
	if err != nil {
		return nil, fmt.Errorf("count ready products: %w", err)
	}
	return &Stats{Total: total, Ready: ready}, nil
}
