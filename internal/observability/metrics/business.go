package metrics

import (
	"strings"
	"time"
)

// RecordCaptionGenerated records one generation run and the size of the
// hashtag set it produced.
func RecordCaptionGenerated(hashtags string) {
	CaptionsGeneratedTotal.Inc()
	HashtagsPerCaption.Observe(float64(len(strings.Fields(hashtags))))
}

// RecordExtraction records the result of a marketplace page extraction.
// Outcome should be "success" or "failure".
func RecordExtraction(success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	ExtractionsTotal.WithLabelValues(outcome).Inc()
	ExtractionDuration.Observe(duration.Seconds())
}

// RecordExport records one archive export.
func RecordExport(duration time.Duration) {
	ExportsTotal.Inc()
	ExportDuration.Observe(duration.Seconds())
}

// RecordImagesDownloaded records how many image downloads succeeded and how
// many were skipped in one export batch.
func RecordImagesDownloaded(requested, downloaded int) {
	if downloaded > 0 {
		ImagesDownloadedTotal.WithLabelValues("success").Add(float64(downloaded))
	}
	if skipped := requested - downloaded; skipped > 0 {
		ImagesDownloadedTotal.WithLabelValues("skipped").Add(float64(skipped))
	}
}
