package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"promo-studio/internal/domain/entity"
	"promo-studio/internal/repository"
)

type SettingsRepo struct{ db *sql.DB }

func NewSettingsRepo(db *sql.DB) repository.SettingsRepository {
	return &SettingsRepo{db: db}
}

// Get returns the single active settings row. On first access the row does
// not exist yet; it is created from the defaults and returned.
func (repo *SettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	const query = `
SELECT id, fixed_hashtags, max_hashtags, cta, affiliate_disclaimer, language, default_prefix, default_suffix
FROM settings
ORDER BY id ASC
LIMIT 1`
	var s entity.Settings
	err := repo.db.QueryRowContext(ctx, query).Scan(
		&s.ID, &s.FixedHashtags, &s.MaxHashtags, &s.CTA,
		&s.AffiliateDisclaimer, &s.Language, &s.DefaultPrefix, &s.DefaultSuffix,
	)
	if err == sql.ErrNoRows {
		return repo.create(ctx, entity.DefaultSettings())
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &s, nil
}

func (repo *SettingsRepo) create(ctx context.Context, s *entity.Settings) (*entity.Settings, error) {
	const query = `
INSERT INTO settings
(fixed_hashtags, max_hashtags, cta, affiliate_disclaimer, language, default_prefix, default_suffix)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		s.FixedHashtags, s.MaxHashtags, s.CTA,
		s.AffiliateDisclaimer, s.Language, s.DefaultPrefix, s.DefaultSuffix,
	).Scan(&s.ID)
	if err != nil {
		return nil, fmt.Errorf("Get: create defaults: %w", err)
	}
	return s, nil
}

func (repo *SettingsRepo) Update(ctx context.Context, s *entity.Settings) error {
	const query = `
UPDATE settings SET
    fixed_hashtags       = $1,
    max_hashtags         = $2,
    cta                  = $3,
    affiliate_disclaimer = $4,
    language             = $5,
    default_prefix       = $6,
    default_suffix       = $7
WHERE id = $8`
	res, err := repo.db.ExecContext(ctx, query,
		s.FixedHashtags, s.MaxHashtags, s.CTA,
		s.AffiliateDisclaimer, s.Language, s.DefaultPrefix, s.DefaultSuffix,
		s.ID,
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
