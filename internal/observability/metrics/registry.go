// Package metrics provides centralized Prometheus metrics for the studio.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track request patterns and performance.
var (
	// HTTPRequestsTotal counts HTTP requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Content generation metrics.
var (
	// CaptionsGeneratedTotal counts caption/hashtag generation runs.
	CaptionsGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "captions_generated_total",
			Help: "Total number of caption and hashtag generation runs",
		},
	)

	// HashtagsPerCaption observes how many hashtags each generation produced,
	// which shows how often the configured cap bites.
	HashtagsPerCaption = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hashtags_per_caption",
			Help:    "Number of hashtags produced per generation run",
			Buckets: prometheus.LinearBuckets(0, 3, 10),
		},
	)
)

// Extraction metrics.
var (
	// ExtractionsTotal counts marketplace page extractions by outcome.
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_extractions_total",
			Help: "Total number of marketplace product extractions",
		},
		[]string{"outcome"},
	)

	// ExtractionDuration measures end-to-end extraction time.
	ExtractionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "product_extraction_duration_seconds",
			Help:    "Marketplace product extraction duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Export metrics.
var (
	// ExportsTotal counts archive exports.
	ExportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "exports_total",
			Help: "Total number of content archive exports",
		},
	)

	// ExportDuration measures archive assembly time including image downloads.
	ExportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "export_duration_seconds",
			Help:    "Content archive export duration in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	// ImagesDownloadedTotal counts images fetched for exports by result.
	ImagesDownloadedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "images_downloaded_total",
			Help: "Total number of product image downloads",
		},
		[]string{"result"},
	)
)
