package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"news-agent/internal/domain/entity"
	"news-agent/internal/repository"
)

type SourceRepo struct {
	db *sql.DB
}

func NewSourceRepo(db *sql.DB) repository.SourceRepository {
	return &SourceRepo{db: db}
}

func (repo *SourceRepo) ListActive(ctx context.Context) ([]*entity.NewsSource, error) {
	const query = `
SELECT id, name, url, source_type, api_key, active, created_at
FROM news_sources
WHERE active = TRUE
ORDER BY created_at`

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListActive: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sources := make([]*entity.NewsSource, 0, 16)
	for rows.Next() {
		var src entity.NewsSource
		var url, apiKey sql.NullString
		if err := rows.Scan(&src.ID, &src.Name, &url, &src.SourceType,
			&apiKey, &src.Active, &src.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListActive: Scan: %w", err)
		}
		src.URL = url.String
		src.APIKey = apiKey.String
		sources = append(sources, &src)
	}
	return sources, rows.Err()
}

func (repo *SourceRepo) Create(ctx context.Context, source *entity.NewsSource) error {
	const query = `
INSERT INTO news_sources (name, url, source_type, api_key, active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`

	err := repo.db.QueryRowContext(ctx, query,
		source.Name, source.URL, source.SourceType, source.APIKey, source.Active).
		Scan(&source.ID, &source.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
