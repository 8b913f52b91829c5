// Package settings exposes the generation configuration over HTTP.
package settings

import (
	"encoding/json"
	"net/http"

	"promo-studio/internal/domain/entity"
	"promo-studio/internal/handler/http/respond"
	settingsUC "promo-studio/internal/usecase/settings"
)

type DTO struct {
	FixedHashtags       string `json:"fixed_hashtags"`
	MaxHashtags         int    `json:"max_hashtags"`
	CTA                 string `json:"cta"`
	AffiliateDisclaimer string `json:"affiliate_disclaimer"`
	Language            string `json:"language"`
	DefaultPrefix       string `json:"default_prefix"`
	DefaultSuffix       string `json:"default_suffix"`
}

func toDTO(s *entity.Settings) DTO {
	return DTO{
		FixedHashtags:       s.FixedHashtags,
		MaxHashtags:         s.MaxHashtags,
		CTA:                 s.CTA,
		AffiliateDisclaimer: s.AffiliateDisclaimer,
		Language:            s.Language,
		DefaultPrefix:       s.DefaultPrefix,
		DefaultSuffix:       s.DefaultSuffix,
	}
}

type GetHandler struct{ Svc *settingsUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.Load(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(s))
}

type UpdateHandler struct{ Svc *settingsUC.Service }

// ServeHTTP replaces the active configuration wholesale and returns it.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FixedHashtags       string `json:"fixed_hashtags"`
		MaxHashtags         int    `json:"max_hashtags"`
		CTA                 string `json:"cta"`
		AffiliateDisclaimer string `json:"affiliate_disclaimer"`
		DefaultPrefix       string `json:"default_prefix"`
		DefaultSuffix       string `json:"default_suffix"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	s, err := h.Svc.Update(r.Context(), settingsUC.UpdateInput{
		FixedHashtags:       req.FixedHashtags,
		MaxHashtags:         req.MaxHashtags,
		CTA:                 req.CTA,
		AffiliateDisclaimer: req.AffiliateDisclaimer,
		DefaultPrefix:       req.DefaultPrefix,
		DefaultSuffix:       req.DefaultSuffix,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(s))
}

// Register mounts the settings routes on mux.
func Register(mux *http.ServeMux, svc *settingsUC.Service) {
	mux.Handle("GET /settings", GetHandler{svc})
	mux.Handle("PUT /settings", UpdateHandler{svc})
}
