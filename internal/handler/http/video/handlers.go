// Package video exposes promotional video tracking over HTTP.
package video

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"promo-studio/internal/domain/entity"
	"promo-studio/internal/handler/http/pathutil"
	"promo-studio/internal/handler/http/respond"
	videoUC "promo-studio/internal/usecase/video"
)

type DTO struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	ShopeeURL    string    `json:"shopee_url"`
	TargetViews  int       `json:"target_views"`
	CurrentViews int       `json:"current_views"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toDTO(v *entity.Video) DTO {
	return DTO{
		ID:           v.ID,
		Title:        v.Title,
		ShopeeURL:    v.ShopeeURL,
		TargetViews:  v.TargetViews,
		CurrentViews: v.CurrentViews,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

type ListHandler struct{ Svc *videoUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	videos, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]DTO, 0, len(videos))
	for _, v := range videos {
		out = append(out, toDTO(v))
	}
	respond.JSON(w, http.StatusOK, out)
}

type AddHandler struct{ Svc *videoUC.Service }

func (h AddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		ShopeeURL   string `json:"shopee_url"`
		TargetViews int    `json:"target_views"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.ShopeeURL == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("shopee_url is required"))
		return
	}

	v, err := h.Svc.Add(r.Context(), videoUC.AddInput{
		Title:       req.Title,
		ShopeeURL:   req.ShopeeURL,
		TargetViews: req.TargetViews,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(v))
}

// mutate runs a by-ID operation and writes the usual status codes, shared
// by the increment, reset and delete handlers.
func mutate(w http.ResponseWriter, r *http.Request, op func(id int64) error) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := op(id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, videoUC.ErrVideoNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type IncrementHandler struct{ Svc *videoUC.Service }

func (h IncrementHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mutate(w, r, func(id int64) error { return h.Svc.IncrementViews(r.Context(), id) })
}

type ResetHandler struct{ Svc *videoUC.Service }

func (h ResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mutate(w, r, func(id int64) error { return h.Svc.ResetViews(r.Context(), id) })
}

type DeleteHandler struct{ Svc *videoUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mutate(w, r, func(id int64) error { return h.Svc.Delete(r.Context(), id) })
}

// Register mounts the video routes on mux.
func Register(mux *http.ServeMux, svc *videoUC.Service) {
	mux.Handle("GET /videos", ListHandler{svc})
	mux.Handle("POST /videos", AddHandler{svc})
	mux.Handle("POST /videos/{id}/increment", IncrementHandler{svc})
	mux.Handle("POST /videos/{id}/reset", ResetHandler{svc})
	mux.Handle("DELETE /videos/{id}", DeleteHandler{svc})
}
