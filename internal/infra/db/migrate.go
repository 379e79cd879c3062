package db

import "database/sql"

// MigrateUp creates the schema if it does not exist. The service owns its
// schema outright, so plain idempotent DDL is enough and no migration
// tooling is involved.
func MigrateUp(db *sql.DB) error {
	tables := []string{
		`
CREATE TABLE IF NOT EXISTS users (
    id       VARCHAR PRIMARY KEY DEFAULT gen_random_uuid(),
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
)`,
		`
CREATE TABLE IF NOT EXISTS posts (
    id          VARCHAR PRIMARY KEY DEFAULT gen_random_uuid(),
    title_en    TEXT NOT NULL,
    title_fa    TEXT NOT NULL,
    excerpt_en  TEXT NOT NULL,
    excerpt_fa  TEXT NOT NULL,
    content_en  TEXT NOT NULL,
    content_fa  TEXT NOT NULL,
    category_en TEXT NOT NULL,
    category_fa TEXT NOT NULL,
    read_time   INTEGER NOT NULL,
    date        TEXT NOT NULL,
    thumbnail   TEXT NOT NULL,
    article_url TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`
CREATE TABLE IF NOT EXISTS podcasts (
    id             VARCHAR PRIMARY KEY DEFAULT gen_random_uuid(),
    title_en       TEXT NOT NULL,
    title_fa       TEXT NOT NULL,
    description_en TEXT NOT NULL,
    description_fa TEXT NOT NULL,
    duration       TEXT NOT NULL,
    date           TEXT NOT NULL,
    audio_url      TEXT,
    youtube_url    TEXT,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`
CREATE TABLE IF NOT EXISTS startups (
    id             VARCHAR PRIMARY KEY DEFAULT gen_random_uuid(),
    name_en        TEXT NOT NULL,
    name_fa        TEXT NOT NULL,
    description_en TEXT NOT NULL,
    description_fa TEXT NOT NULL,
    status_en      TEXT NOT NULL,
    status_fa      TEXT NOT NULL,
    category_en    TEXT NOT NULL,
    category_fa    TEXT NOT NULL,
    thumbnail      TEXT NOT NULL,
    website_url    TEXT,
    article_url    TEXT,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`
CREATE TABLE IF NOT EXISTS sessions (
    token      TEXT PRIMARY KEY,
    user_id    VARCHAR NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    expires_at TIMESTAMPTZ NOT NULL
)`,
	}
	for _, ddl := range tables {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}

	indexes := []string{
		// list endpoints sort by these columns
		`CREATE INDEX IF NOT EXISTS idx_posts_date ON posts(date ASC)`,
		`CREATE INDEX IF NOT EXISTS idx_podcasts_date ON podcasts(date ASC)`,
		`CREATE INDEX IF NOT EXISTS idx_startups_created_at ON startups(created_at ASC)`,
		// session pruning scans by expiry
		`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}
	return nil
}
