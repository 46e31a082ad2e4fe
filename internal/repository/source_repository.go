package repository

import (
	"context"

	"news-agent/internal/domain/entity"
)

// SourceRepository provides access to the news source registry.
type SourceRepository interface {
	// ListActive returns active sources ordered by creation time.
	ListActive(ctx context.Context) ([]*entity.NewsSource, error)

	// Create stores a new source and fills in its ID and CreatedAt.
	Create(ctx context.Context, source *entity.NewsSource) error
}
