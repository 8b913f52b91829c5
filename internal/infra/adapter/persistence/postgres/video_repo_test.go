package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"promo-studio/internal/domain/entity"
	"promo-studio/internal/infra/adapter/persistence/postgres"
)

var videoCols = []string{
	"id", "title", "shopee_url", "target_views", "current_views", "created_at", "updated_at",
}

func TestVideoRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(`FROM videos`).
		WillReturnRows(sqlmock.NewRows(videoCols).AddRow(
			int64(1), "Vestido reels", "https://shopee.com.br/v/1", 100, 42, now, now,
		))

	repo := postgres.NewVideoRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if got[0].CurrentViews != 42 {
		t.Fatalf("unexpected video: %+v", got[0])
	}
}

func TestVideoRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO videos`)).
		WithArgs("Reels", "https://shopee.com.br/v/1", 50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	repo := postgres.NewVideoRepo(db)
	v := &entity.Video{Title: "Reels", ShopeeURL: "https://shopee.com.br/v/1", TargetViews: 50}
	if err := repo.Create(context.Background(), v); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if v.ID != 3 {
		t.Fatalf("want assigned ID 3, got %d", v.ID)
	}
}

func TestVideoRepo_IncrementViews(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`current_views = current_views + 1`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewVideoRepo(db)
	if err := repo.IncrementViews(context.Background(), 1); err != nil {
		t.Fatalf("IncrementViews err=%v", err)
	}
}

func TestVideoRepo_ResetViews_notFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`current_views = 0`)).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := postgres.NewVideoRepo(db)
	if err := repo.ResetViews(context.Background(), 99); err == nil {
		t.Fatal("want error for missing video")
	}
}

func TestVideoRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM videos`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewVideoRepo(db)
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}
