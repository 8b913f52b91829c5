package product

import (
	"errors"
	"net/http"

	"promo-studio/internal/handler/http/pathutil"
	"promo-studio/internal/handler/http/respond"
	prodUC "promo-studio/internal/usecase/product"
)

type GenerateHandler struct{ Svc *prodUC.Service }

// ServeHTTP builds the caption and hashtags for one product and persists
// them, returning the refreshed product.
func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := h.Svc.Generate(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, prodUC.ErrProductNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(p))
}

type GenerateAllHandler struct{ Svc *prodUC.Service }

// ServeHTTP regenerates content for the whole catalogue and reports how
// many products were processed.
func (h GenerateAllHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n, err := h.Svc.GenerateAll(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]int{"generated": n})
}
