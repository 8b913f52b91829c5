package settings_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-studio/internal/domain/entity"
	settingshttp "promo-studio/internal/handler/http/settings"
	settingsUC "promo-studio/internal/usecase/settings"
)

type stubRepo struct {
	stored *entity.Settings
}

func (r *stubRepo) Get(ctx context.Context) (*entity.Settings, error) {
	if r.stored == nil {
		r.stored = entity.DefaultSettings()
	}
	return r.stored, nil
}

func (r *stubRepo) Update(ctx context.Context, s *entity.Settings) error {
	r.stored = s
	return nil
}

func newMux(repo *stubRepo) *http.ServeMux {
	mux := http.NewServeMux()
	settingshttp.Register(mux, &settingsUC.Service{Repo: repo})
	return mux
}

func TestGetSettingsReturnsDefaults(t *testing.T) {
	mux := newMux(&stubRepo{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/settings", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out settingshttp.DTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "#shopee #shopeeafiliados", out.FixedHashtags)
	assert.Equal(t, 18, out.MaxHashtags)
	assert.Equal(t, "Confira no link 👇", out.CTA)
}

func TestUpdateSettings(t *testing.T) {
	repo := &stubRepo{}
	mux := newMux(repo)

	body := `{
		"fixed_hashtags": "#promo #achados",
		"max_hashtags": 10,
		"cta": "Garanta o seu!",
		"affiliate_disclaimer": "(link de afiliado)",
		"default_prefix": "Olha isso 👀"
	}`
	req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out settingshttp.DTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "#promo #achados", out.FixedHashtags)
	assert.Equal(t, 10, out.MaxHashtags)
	assert.Equal(t, "#promo #achados", repo.stored.FixedHashtags)
}

func TestUpdateSettingsRejectsNegativeLimit(t *testing.T) {
	mux := newMux(&stubRepo{})

	req := httptest.NewRequest(http.MethodPut, "/settings",
		strings.NewReader(`{"max_hashtags": -1}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
