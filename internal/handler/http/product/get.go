package product

import (
	"errors"
	"net/http"

	"promo-studio/internal/handler/http/pathutil"
	"promo-studio/internal/handler/http/respond"
	prodUC "promo-studio/internal/usecase/product"
)

type GetHandler struct{ Svc *prodUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := h.Svc.Get(r.Context(), id)
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
