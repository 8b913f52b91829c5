package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"promo-studio/internal/domain/entity"
	"promo-studio/internal/infra/adapter/persistence/postgres"
)

var productCols = []string{
	"id", "title", "category", "price", "affiliate_link",
	"image_urls", "notes", "caption", "hashtags", "created_at", "updated_at",
}

func productRow(p *entity.Product) *sqlmock.Rows {
	return sqlmock.NewRows(productCols).AddRow(
		p.ID, p.Title, p.Category, p.Price, p.AffiliateLink,
		p.ImageURLs, p.Notes, p.Caption, p.Hashtags, p.CreatedAt, p.UpdatedAt,
	)
}

func TestProductRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	want := &entity.Product{
		ID: 1, Title: "Vestido Azul", Category: "moda feminina",
		Price: "R$ 99,90", AffiliateLink: "https://s.shopee.com.br/x",
		CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).
		WithArgs(int64(1)).
		WillReturnRows(productRow(want))

	repo := postgres.NewProductRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestProductRepo_Get_notFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(productCols))

	repo := postgres.NewProductRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("want nil for missing product, got %+v", got)
	}
}

func TestProductRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM products`).
		WillReturnRows(productRow(&entity.Product{ID: 1, Title: "Bolsa Bege"}))

	repo := postgres.NewProductRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestProductRepo_Search(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM products`).
		WithArgs("%vestido%").
		WillReturnRows(sqlmock.NewRows(productCols)) // empty set OK

	repo := postgres.NewProductRepo(db)
	got, err := repo.Search(context.Background(), "vestido")
	if err != nil || len(got) != 0 {
		t.Fatalf("Search err=%v len=%d", err, len(got))
	}
}

func TestProductRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products`)).
		WithArgs("Vestido", "moda feminina", "", "", "", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := postgres.NewProductRepo(db)
	p := &entity.Product{Title: "Vestido", Category: "moda feminina"}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if p.ID != 7 {
		t.Fatalf("want assigned ID 7, got %d", p.ID)
	}
}

func TestProductRepo_UpdateGenerated(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE products SET`)).
		WithArgs("caption text", "#shopee #vestido", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewProductRepo(db)
	err := repo.UpdateGenerated(context.Background(), 3, "caption text", "#shopee #vestido")
	if err != nil {
		t.Fatalf("UpdateGenerated err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestProductRepo_UpdateGenerated_notFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE products SET`)).
		WithArgs("c", "#h", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := postgres.NewProductRepo(db)
	if err := repo.UpdateGenerated(context.Background(), 99, "c", "#h"); err == nil {
		t.Fatal("want error for missing product")
	}
}

func TestProductRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewProductRepo(db)
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestProductRepo_Counts(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery(regexp.QuoteMeta(`caption <> ''`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	repo := postgres.NewProductRepo(db)
	total, err := repo.Count(context.Background())
	if err != nil || total != 12 {
		t.Fatalf("Count=%d err=%v", total, err)
	}
	ready, err := repo.CountReady(context.Background())
	if err != nil || ready != 5 {
		t.Fatalf("CountReady=%d err=%v", ready, err)
	}
}
