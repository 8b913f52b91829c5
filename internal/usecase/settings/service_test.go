package settings_test

import (
	"context"
	"testing"

	"promo-studio/internal/domain/entity"
	setUC "promo-studio/internal/usecase/settings"
)

type stubRepo struct {
	stored *entity.Settings
	err    error
}

func (s *stubRepo) Get(_ context.Context) (*entity.Settings, error) {
	if s.stored == nil {
		s.stored = entity.DefaultSettings()
		s.stored.ID = 1
	}
	return s.stored, s.err
}

func (s *stubRepo) Update(_ context.Context, settings *entity.Settings) error {
	if s.err != nil {
		return s.err
	}
	s.stored = settings
	return nil
}

func TestService_Load_defaults(t *testing.T) {
	svc := setUC.Service{Repo: &stubRepo{}}

	got, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if got.FixedHashtags != "#shopee #shopeeafiliados" || got.MaxHashtags != 18 {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestService_Update(t *testing.T) {
	stub := &stubRepo{}
	svc := setUC.Service{Repo: stub}

	got, err := svc.Update(context.Background(), setUC.UpdateInput{
		FixedHashtags: "  #meusachados  ",
		MaxHashtags:   10,
		CTA:           "Olha isso",
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.FixedHashtags != "#meusachados" {
		t.Fatalf("fixed hashtags not trimmed: %q", got.FixedHashtags)
	}
	if stub.stored.MaxHashtags != 10 {
		t.Fatalf("not persisted: %+v", stub.stored)
	}
}

func TestService_Update_rejectsNegativeCap(t *testing.T) {
	svc := setUC.Service{Repo: &stubRepo{}}

	if _, err := svc.Update(context.Background(), setUC.UpdateInput{MaxHashtags: -1}); err == nil {
		t.Fatalf("want validation error, got nil")
	}
}
