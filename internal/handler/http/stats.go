package http

import (
	"net/http"

	"promo-studio/internal/handler/http/respond"
	prodUC "promo-studio/internal/usecase/product"
)

// StatsHandler serves the dashboard counters: total products and how many
// already have generated content.
type StatsHandler struct {
	Products *prodUC.Service
}

func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Products.Stats(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]int64{
		"total_products": stats.Total,
		"ready_products": stats.Ready,
	})
}
