package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"promo-studio/internal/handler/http/pathutil"
	"promo-studio/internal/handler/http/respond"
	prodUC "promo-studio/internal/usecase/product"
)

type UpdateHandler struct{ Svc *prodUC.Service }

// ServeHTTP replaces every editable field of the product; the generated
// caption and hashtags are only touched by the generate endpoints.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title         string   `json:"title"`
		Category      string   `json:"category"`
		Price         string   `json:"price"`
		AffiliateLink string   `json:"affiliate_link"`
		ImageURLs     []string `json:"image_urls"`
		Notes         string   `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := h.Svc.Update(r.Context(), prodUC.UpdateInput{
		ID:            id,
		Title:         req.Title,
		Category:      req.Category,
		Price:         req.Price,
		AffiliateLink: req.AffiliateLink,
		ImageURLs:     strings.Join(req.ImageURLs, "\n"),
		Notes:         req.Notes,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, prodUC.ErrProductNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(p))
}
