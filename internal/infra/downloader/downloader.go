// Package downloader fetches product images in bulk for export. Failures are
// soft: a URL that cannot be downloaded is skipped and never aborts the
// batch, so an export always produces an archive with whatever images could
// be retrieved.
package downloader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"promo-studio/internal/pkg/config"
)

// maxImageSize limits a single image read; anything larger is skipped.
const maxImageSize = 20 << 20

// Image is one successfully downloaded product image. Name carries the
// position of the URL in the input list, so gaps from failed downloads stay
// visible in the file names.
type Image struct {
	Name string
	Data []byte
}

// Config controls download behavior. Values come from the environment via
// ConfigFromEnv; zero values are not valid.
type Config struct {
	// Parallelism bounds concurrent downloads within one batch.
	Parallelism int

	// RatePerSecond caps the request rate against the image CDN across
	// batches.
	RatePerSecond int
}

// ConfigFromEnv loads downloader settings from the environment with
// validated fallbacks.
func ConfigFromEnv() Config {
	return Config{
		Parallelism:   config.LoadEnvInt("IMAGE_DOWNLOAD_PARALLELISM", 4, config.ValidatePositiveInt),
		RatePerSecond: config.LoadEnvInt("IMAGE_DOWNLOAD_RATE", 8, config.ValidatePositiveInt),
	}
}

// ImageDownloader downloads batches of image URLs. A shared circuit breaker
// stops hammering the CDN when it starts failing consistently; an open
// breaker skips the remaining URLs the same way any per-URL failure would.
type ImageDownloader struct {
	client      *http.Client
	parallelism int
	limiter     *rate.Limiter
	breaker     *gobreaker.CircuitBreaker
}

// New creates an ImageDownloader using the given HTTP client. The client's
// timeout bounds each individual download.
func New(client *http.Client, cfg Config) *ImageDownloader {
	return &ImageDownloader{
		client:      client,
		parallelism: cfg.Parallelism,
		limiter:     rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RatePerSecond),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "image-cdn",
			MaxRequests: 1,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// Download fetches every URL and returns the successfully downloaded images
// in input order. Failed URLs are logged at debug level and silently omitted;
// Download itself never fails.
func (d *ImageDownloader) Download(ctx context.Context, urls []string) []Image {
	results := make([]*Image, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.parallelism)
	for i, url := range urls {
		g.Go(func() error {
			img, err := d.fetchOne(ctx, i+1, url)
			if err != nil {
				slog.Debug("image download skipped",
					slog.String("url", url),
					slog.Any("error", err))
				return nil // soft failure, keep going
			}
			results[i] = img
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	images := make([]Image, 0, len(urls))
	for _, img := range results {
		if img != nil {
			images = append(images, *img)
		}
	}
	return images
}

func (d *ImageDownloader) fetchOne(ctx context.Context, position int, url string) (*Image, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := d.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := d.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status: %s", resp.Status)
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
		if err != nil {
			return nil, err
		}

		name := fmt.Sprintf("img_%02d%s", position, extensionFor(resp.Header.Get("Content-Type")))
		return &Image{Name: name, Data: data}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Image), nil
}

// extensionFor guesses a file extension from the response content type.
// Unknown types default to .jpg, which is what the CDN serves in practice.
func extensionFor(contentType string) string {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "png"):
		return ".png"
	case strings.Contains(ct, "webp"):
		return ".webp"
	default:
		return ".jpg"
	}
}
