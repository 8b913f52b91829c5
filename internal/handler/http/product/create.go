package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"promo-studio/internal/handler/http/respond"
	prodUC "promo-studio/internal/usecase/product"
)

type CreateHandler struct{ Svc *prodUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
	if strings.TrimSpace(req.Title) == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("title is required"))
		return
	}

	p, err := h.Svc.Create(r.Context(), prodUC.CreateInput{
		Title:         req.Title,
		Category:      req.Category,
		Price:         req.Price,
		AffiliateLink: req.AffiliateLink,
		ImageURLs:     strings.Join(req.ImageURLs, "\n"),
		Notes:         req.Notes,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(p))
}
