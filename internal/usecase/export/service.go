// Package export assembles the ready-to-post content archive: one folder
// per product with caption, metadata and downloaded images, plus a
// top-level manifest.
package export

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"promo-studio/internal/content"
	"promo-studio/internal/infra/downloader"
	"promo-studio/internal/observability/metrics"
	"promo-studio/internal/repository"
)

// Downloader fetches product images for inclusion in the archive.
type Downloader interface {
	Download(ctx context.Context, urls []string) []downloader.Image
}

// Service builds export archives from the stored catalogue.
type Service struct {
	Products repository.ProductRepository
	Settings repository.SettingsRepository
	Images   Downloader
}

type manifestEntry struct {
	Folder        string `json:"folder"`
	Title         string `json:"title"`
	AffiliateLink string `json:"affiliate_link"`
}

type productMeta struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Price         string   `json:"price"`
	AffiliateLink string   `json:"affiliate_link"`
	ImageURLs     []string `json:"image_urls"`
	Caption       string   `json:"caption"`
	Hashtags      string   `json:"hashtags"`
	UpdatedAt     *string  `json:"updated_at"`
}

// ArchiveName returns the download file name for an archive built at t.
func ArchiveName(t time.Time) string {
	return fmt.Sprintf("conteudos_%s.zip", t.Format("2006-01-02_1504"))
}

// BuildArchive writes a zip archive of every stored product to w and
// returns the number of products included. Products without generated
// content get a caption built on the fly; the result is not persisted.
func (s *Service) BuildArchive(ctx context.Context, w io.Writer) (int, error) {
	start := time.Now()

	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("BuildArchive: load settings: %w", err)
	}
	products, err := s.Products.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("BuildArchive: list products: %w", err)
	}

	zw := zip.NewWriter(w)
	manifest := make([]manifestEntry, 0, len(products))

	for i, p := range products {
		caption, hashtags := p.Caption, p.Hashtags
		if caption == "" || hashtags == "" {
			caption, hashtags = content.BuildCaption(settings, p)
		}

		folder := folderName(p.Title, i+1)

		if err := writeFile(zw, folder+"/caption.txt", []byte(caption+"\n\n"+hashtags+"\n")); err != nil {
			return 0, fmt.Errorf("BuildArchive: write caption: %w", err)
		}

		meta := productMeta{
			ID:            p.ID,
			Title:         p.Title,
			Category:      p.Category,
			Price:         p.Price,
			AffiliateLink: p.AffiliateLink,
			ImageURLs:     p.ImageURLList(),
			Caption:       caption,
			Hashtags:      hashtags,
		}
		if !p.UpdatedAt.IsZero() {
			ts := p.UpdatedAt.UTC().Format(time.RFC3339)
			meta.UpdatedAt = &ts
		}
		metaJSON, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			return 0, fmt.Errorf("BuildArchive: encode metadata: %w", err)
		}
		if err := writeFile(zw, folder+"/meta.json", metaJSON); err != nil {
			return 0, fmt.Errorf("BuildArchive: write metadata: %w", err)
		}

		if urls := p.ImageURLList(); len(urls) > 0 && s.Images != nil {
			images := s.Images.Download(ctx, urls)
			metrics.RecordImagesDownloaded(len(urls), len(images))
			for _, img := range images {
				if err := writeFile(zw, folder+"/images/"+img.Name, img.Data); err != nil {
					return 0, fmt.Errorf("BuildArchive: write image: %w", err)
				}
			}
		}

		manifest = append(manifest, manifestEntry{
			Folder:        folder,
			Title:         p.Title,
			AffiliateLink: p.AffiliateLink,
		})
	}

	manifestJSON, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("BuildArchive: encode manifest: %w", err)
	}
	if err := writeFile(zw, "MANIFEST.json", manifestJSON); err != nil {
		return 0, fmt.Errorf("BuildArchive: write manifest: %w", err)
	}

	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("BuildArchive: close archive: %w", err)
	}

	metrics.RecordExport(time.Since(start))
	return len(products), nil
}

func writeFile(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}
