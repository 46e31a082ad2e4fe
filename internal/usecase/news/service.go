// Package news serves stored articles: paginated listing, single lookup
// and the on-demand digest.
package news

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"news-agent/internal/common/pagination"
	"news-agent/internal/domain/entity"
	"news-agent/internal/observability/metrics"
	"news-agent/internal/repository"
)

// Fixed digest messages returned to clients regardless of the underlying
// cause. Details go to the log, never to the response.
const (
	NoNewsMessage      = "No hay noticias disponibles en este momento."
	DigestErrorMessage = "Error al generar el digest de noticias."
)

// digestWindow selects articles for the digest: the last 24 hours, capped.
const (
	digestWindow        = 24 * time.Hour
	digestWindowLimit   = 10
	digestFallbackLimit = 5
)

// DigestGenerator produces one combined digest text from a set of articles.
type DigestGenerator interface {
	Digest(ctx context.Context, articles []*entity.Article) (string, error)
}

// ListResult bundles one page of articles with its pagination metadata.
type ListResult struct {
	Articles []*entity.Article
	Meta     pagination.Metadata
}

// DigestResult is the outcome of one digest generation.
type DigestResult struct {
	Digest        string
	ArticlesCount int
	GeneratedAt   time.Time
}

// Service reads articles and generates digests.
type Service struct {
	articles repository.ArticleRepository
	digester DigestGenerator
}

func NewService(articles repository.ArticleRepository, digester DigestGenerator) *Service {
	return &Service{articles: articles, digester: digester}
}

// List returns one page of articles, newest first.
func (s *Service) List(ctx context.Context, params pagination.Params) (ListResult, error) {
	total, err := s.articles.Count(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("news: count: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.PerPage)
	articles, err := s.articles.ListPaginated(ctx, offset, params.PerPage)
	if err != nil {
		return ListResult{}, fmt.Errorf("news: list: %w", err)
	}

	return ListResult{
		Articles: articles,
		Meta:     pagination.NewMetadata(params, total),
	}, nil
}

// Get returns one article by ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	article, err := s.articles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("news: get %d: %w", id, err)
	}
	return article, nil
}

// Digest builds a combined digest from recent articles. With no stored
// articles it returns NoNewsMessage; a generation failure returns
// DigestErrorMessage. Neither case is an error to the caller.
func (s *Service) Digest(ctx context.Context) (DigestResult, error) {
	articles, err := s.recentArticles(ctx)
	if err != nil {
		return DigestResult{}, fmt.Errorf("news: digest query: %w", err)
	}

	result := DigestResult{
		ArticlesCount: len(articles),
		GeneratedAt:   time.Now().UTC(),
	}

	if len(articles) == 0 {
		result.Digest = NoNewsMessage
		return result, nil
	}

	digest, err := s.digester.Digest(ctx, articles)
	if err != nil {
		slog.Error("generación de digest falló", slog.String("error", err.Error()))
		metrics.RecordDigestGenerated(false)
		result.Digest = DigestErrorMessage
		return result, nil
	}

	metrics.RecordDigestGenerated(true)
	result.Digest = digest
	return result, nil
}

// recentArticles prefers the last 24 hours; when that window is empty it
// falls back to the most recent articles on record.
func (s *Service) recentArticles(ctx context.Context) ([]*entity.Article, error) {
	since := time.Now().UTC().Add(-digestWindow)
	articles, err := s.articles.PublishedSince(ctx, since, digestWindowLimit)
	if err != nil {
		return nil, err
	}
	if len(articles) > 0 {
		return articles, nil
	}
	return s.articles.MostRecent(ctx, digestFallbackLimit)
}
