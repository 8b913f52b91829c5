package product

import (
	"net/http"
	"strings"

	"promo-studio/internal/domain/entity"
	"promo-studio/internal/handler/http/respond"
	prodUC "promo-studio/internal/usecase/product"
)

type ListHandler struct{ Svc *prodUC.Service }

// ServeHTTP lists the catalogue, most recently updated first. A non-empty
// q parameter narrows the result to titles containing the keyword.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(r.URL.Query().Get("q"))

	var (
		products []*entity.Product
		err      error
	)
	if keyword != "" {
		products, err = h.Svc.Search(r.Context(), keyword)
	} else {
		products, err = h.Svc.List(r.Context())
	}
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(products))
	for _, p := range products {
		out = append(out, toDTO(p))
	}
	respond.JSON(w, http.StatusOK, out)
}
