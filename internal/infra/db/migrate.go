package db

import "database/sql"

// MigrateUp creates the studio schema when it does not exist yet. The schema
// is small enough that idempotent CREATE statements beat a migration tool.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS settings (
    id                   SERIAL PRIMARY KEY,
    fixed_hashtags       TEXT NOT NULL DEFAULT '',
    max_hashtags         INTEGER NOT NULL DEFAULT 18,
    cta                  TEXT NOT NULL DEFAULT '',
    affiliate_disclaimer TEXT NOT NULL DEFAULT '',
    language             TEXT NOT NULL DEFAULT 'pt-br',
    default_prefix       TEXT NOT NULL DEFAULT '',
    default_suffix       TEXT NOT NULL DEFAULT ''
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS products (
    id             SERIAL PRIMARY KEY,
    title          TEXT NOT NULL,
    category       TEXT NOT NULL DEFAULT '',
    price          TEXT NOT NULL DEFAULT '',
    affiliate_link TEXT NOT NULL DEFAULT '',
    image_urls     TEXT NOT NULL DEFAULT '',
    notes          TEXT NOT NULL DEFAULT '',
    caption        TEXT NOT NULL DEFAULT '',
    hashtags       TEXT NOT NULL DEFAULT '',
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS videos (
    id            SERIAL PRIMARY KEY,
    title         TEXT NOT NULL DEFAULT '',
    shopee_url    TEXT NOT NULL,
    target_views  INTEGER NOT NULL DEFAULT 1,
    current_views INTEGER NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Listings are always ordered by recency.
		`CREATE INDEX IF NOT EXISTS idx_products_updated_at ON products(updated_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_videos_updated_at ON videos(updated_at DESC)`,
	}
	for _, stmt := range indexes {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the title ILIKE search; ignore failure when the
	// extension is unavailable or the role lacks permission.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	_, _ = db.Exec(`CREATE INDEX IF NOT EXISTS idx_products_title_gin ON products USING gin(title gin_trgm_ops)`)

	return nil
}
