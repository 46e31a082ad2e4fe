// Package repository defines the persistence interfaces used by the usecase layer.
package repository

import (
	"context"
	"time"

	"news-agent/internal/domain/entity"
)

// ArticleRepository provides access to stored articles.
type ArticleRepository interface {
	// ListPaginated returns articles ordered by published_at descending
	// (unknown dates last), sliced by offset/limit.
	ListPaginated(ctx context.Context, offset, limit int) ([]*entity.Article, error)

	// Count returns the total number of stored articles.
	Count(ctx context.Context) (int64, error)

	// Get returns a single article or entity.ErrNotFound.
	Get(ctx context.Context, id int64) (*entity.Article, error)

	// ExistsByURLBatch checks many URLs in one round trip.
	// The returned map contains an entry for every requested URL.
	ExistsByURLBatch(ctx context.Context, urls []string) (map[string]bool, error)

	// CreateBatch inserts the given articles in a single transaction and
	// returns the number of rows actually inserted. Articles whose URL
	// already exists are silently skipped by the database.
	CreateBatch(ctx context.Context, articles []*entity.Article) (int, error)

	// PublishedSince returns up to limit articles published at or after the
	// given instant, newest first.
	PublishedSince(ctx context.Context, since time.Time, limit int) ([]*entity.Article, error)

	// MostRecent returns up to limit articles, newest first by published_at.
	MostRecent(ctx context.Context, limit int) ([]*entity.Article, error)
}
