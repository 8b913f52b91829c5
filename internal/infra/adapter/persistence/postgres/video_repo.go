package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"promo-studio/internal/domain/entity"
	"promo-studio/internal/repository"
)

type VideoRepo struct{ db *sql.DB }

func NewVideoRepo(db *sql.DB) repository.VideoRepository {
	return &VideoRepo{db: db}
}

func (repo *VideoRepo) Get(ctx context.Context, id int64) (*entity.Video, error) {
	const query = `
SELECT id, title, shopee_url, target_views, current_views, created_at, updated_at
FROM videos
WHERE id = $1
LIMIT 1`
	var v entity.Video
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Title, &v.ShopeeURL, &v.TargetViews, &v.CurrentViews,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &v, nil
}

func (repo *VideoRepo) List(ctx context.Context) ([]*entity.Video, error) {
	const query = `
SELECT id, title, shopee_url, target_views, current_views, created_at, updated_at
FROM videos
ORDER BY updated_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	videos := make([]*entity.Video, 0, 50)
	for rows.Next() {
		var v entity.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.ShopeeURL, &v.TargetViews,
			&v.CurrentViews, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		videos = append(videos, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return videos, nil
}

func (repo *VideoRepo) Create(ctx context.Context, video *entity.Video) error {
	const query = `
INSERT INTO videos
(title, shopee_url, target_views, current_views)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		video.Title, video.ShopeeURL, video.TargetViews, video.CurrentViews,
	).Scan(&video.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *VideoRepo) IncrementViews(ctx context.Context, id int64) error {
	const query = `
UPDATE videos SET
    current_views = current_views + 1,
    updated_at    = now()
WHERE id = $1`
	return repo.execOne(ctx, "IncrementViews", query, id)
}

func (repo *VideoRepo) ResetViews(ctx context.Context, id int64) error {
	const query = `
UPDATE videos SET
    current_views = 0,
    updated_at    = now()
WHERE id = $1`
	return repo.execOne(ctx, "ResetViews", query, id)
}

func (repo *VideoRepo) Delete(ctx context.Context, id int64) error {
	return repo.execOne(ctx, "Delete", `DELETE FROM videos WHERE id = $1`, id)
}

func (repo *VideoRepo) execOne(ctx context.Context, op, query string, id int64) error {
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: ExecContext: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: RowsAffected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: no rows affected", op)
	}
	return nil
}
