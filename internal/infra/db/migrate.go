package db

import "database/sql"

// MigrateUp creates the schema if it does not exist yet.
// Statements are idempotent so the migration can run on every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news_sources (
    id          SERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    url         TEXT,
    source_type VARCHAR(20) NOT NULL DEFAULT 'api',
    api_key     TEXT,
    active      BOOLEAN DEFAULT TRUE,
    created_at  TIMESTAMPTZ DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news_articles (
    id                   SERIAL PRIMARY KEY,
    title                TEXT NOT NULL,
    description          TEXT NOT NULL DEFAULT '',
    content              TEXT NOT NULL DEFAULT '',
    url                  TEXT NOT NULL DEFAULT '',
    image_url            TEXT NOT NULL DEFAULT '',
    source_name          TEXT NOT NULL DEFAULT '',
    author               TEXT NOT NULL DEFAULT '',
    published_at         TIMESTAMPTZ,
    created_at           TIMESTAMPTZ DEFAULT now(),
    summary              TEXT,
    summary_generated_at TIMESTAMPTZ
)`); err != nil {
		return err
	}

	indexes := []string{
		// Dedup authority: one row per non-empty URL. Concurrent ingests of
		// the same article race here instead of in application code.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_news_articles_url ON news_articles(url) WHERE url <> ''`,
		// Used by listing and the digest window (ORDER BY published_at DESC)
		`CREATE INDEX IF NOT EXISTS idx_news_articles_published_at ON news_articles(published_at DESC NULLS LAST)`,
		// Active source lookup for the registry and the worker
		`CREATE INDEX IF NOT EXISTS idx_news_sources_active ON news_sources(active) WHERE active = TRUE`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// source_type constraint; ignore errors when it already exists
	_, _ = db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = 'chk_news_source_type'
    ) THEN
        ALTER TABLE news_sources ADD CONSTRAINT chk_news_source_type
        CHECK (source_type IN ('api', 'rss', 'scraping'));
    END IF;
END $$;
`)

	return nil
}
