package product

import (
	"errors"
	"net/http"

	"promo-studio/internal/handler/http/pathutil"
	"promo-studio/internal/handler/http/respond"
	prodUC "promo-studio/internal/usecase/product"
)

type DeleteHandler struct{ Svc *prodUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, prodUC.ErrProductNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
