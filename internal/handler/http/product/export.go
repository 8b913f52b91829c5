package product

import (
	"fmt"
	"net/http"
	"time"

	"promo-studio/internal/handler/http/respond"
	exportUC "promo-studio/internal/usecase/export"
)

type ExportHandler struct{ Svc *exportUC.Service }

// ServeHTTP streams the content archive as a zip download. The archive is
// written directly to the response, so a failure mid-stream can only be
// logged.
func (h ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := exportUC.ArchiveName(time.Now())
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	if _, err := h.Svc.BuildArchive(r.Context(), w); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
}
