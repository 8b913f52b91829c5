package product

import (
	"time"

	"promo-studio/internal/domain/entity"
)

type DTO struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Price         string    `json:"price"`
	AffiliateLink string    `json:"affiliate_link"`
	ImageURLs     []string  `json:"image_urls"`
	Notes         string    `json:"notes"`
	Caption       string    `json:"caption"`
	Hashtags      string    `json:"hashtags"`
	Generated     bool      `json:"generated"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toDTO(p *entity.Product) DTO {
	return DTO{
		ID:            p.ID,
		Title:         p.Title,
		Category:      p.Category,
		Price:         p.Price,
		AffiliateLink: p.AffiliateLink,
		ImageURLs:     p.ImageURLList(),
		Notes:         p.Notes,
		Caption:       p.Caption,
		Hashtags:      p.Hashtags,
		Generated:     p.Generated(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
