package product

import (
	"encoding/json"
	"errors"
	"net/http"

	"promo-studio/internal/handler/http/respond"
	"promo-studio/internal/infra/scraper"
	prodUC "promo-studio/internal/usecase/product"
)

type ImportHandler struct{ Svc *prodUC.Service }

// ServeHTTP imports a product from a marketplace page URL. Extraction
// failures answer 422 with the extractor's message so the operator knows
// to fall back to manual entry.
func (h ImportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.URL == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("url is required"))
		return
	}

	p, err := h.Svc.ImportFromURL(r.Context(), req.URL)
	if err != nil {
		if scraper.IsExtractionError(err) {
			respond.SafeError(w, http.StatusUnprocessableEntity,
				respond.NewAppError(http.StatusUnprocessableEntity, err.Error(), err))
			return
		}
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(p))
}
