package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"promo-studio/internal/domain/entity"
	"promo-studio/internal/repository"
)

type ProductRepo struct{ db *sql.DB }

func NewProductRepo(db *sql.DB) repository.ProductRepository {
	return &ProductRepo{db: db}
}

const productColumns = `id, title, category, price, affiliate_link, image_urls, notes, caption, hashtags, created_at, updated_at`

func scanProduct(scanner interface{ Scan(...any) error }) (*entity.Product, error) {
	var p entity.Product
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Category, &p.Price, &p.AffiliateLink,
		&p.ImageURLs, &p.Notes, &p.Caption, &p.Hashtags,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *ProductRepo) Get(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
LIMIT 1`
	p, err := scanProduct(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return p, nil
}

func (repo *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
SELECT ` + productColumns + `
FROM products
ORDER BY updated_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]*entity.Product, 0, 50)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return products, nil
}

func (repo *ProductRepo) Search(ctx context.Context, keyword string) ([]*entity.Product, error) {
	query := `
SELECT ` + productColumns + `
FROM products
WHERE title ILIKE $1
ORDER BY updated_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, "%"+keyword+"%")
	if err != nil {
		return nil, fmt.Errorf("Search: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]*entity.Product, 0, 50)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Search: rows.Err: %w", err)
	}
	return products, nil
}

func (repo *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	const query = `
INSERT INTO products
(title, category, price, affiliate_link, image_urls, notes, caption, hashtags)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		product.Title, product.Category, product.Price, product.AffiliateLink,
		product.ImageURLs, product.Notes, product.Caption, product.Hashtags,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	const query = `
UPDATE products SET
    title          = $1,
    category       = $2,
    price          = $3,
    affiliate_link = $4,
    image_urls     = $5,
    notes          = $6,
    updated_at     = now()
WHERE id = $7`
	res, err := repo.db.ExecContext(ctx, query,
		product.Title, product.Category, product.Price, product.AffiliateLink,
		product.ImageURLs, product.Notes, product.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

// UpdateGenerated writes the derived caption and hashtag fields together.
// Generation results are never split across statements, so readers see a
// product either fully generated or not generated at all.
func (repo *ProductRepo) UpdateGenerated(ctx context.Context, id int64, caption, hashtags string) error {
	const query = `
UPDATE products SET
    caption    = $1,
    hashtags   = $2,
    updated_at = now()
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, caption, hashtags, id)
	if err != nil {
		return fmt.Errorf("UpdateGenerated: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdateGenerated: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("UpdateGenerated: no rows affected")
	}
	return nil
}

func (repo *ProductRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM products WHERE id = $1`

	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *ProductRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ProductRepo) CountReady(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE caption <> ''`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountReady: %w", err)
	}
	return count, nil
}
