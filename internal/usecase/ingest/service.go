// Package ingest implements the fetch → summarize → dedup → persist pipeline
// behind POST /news/fetch and the scheduled worker.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"news-agent/internal/domain/entity"
	"news-agent/internal/observability/metrics"
	"news-agent/internal/repository"
	"news-agent/internal/utils/text"
)

// contentEnrichThreshold: feed entries with less content than this are
// worth a full-page fetch before summarization.
const contentEnrichThreshold = 600

// Result reports what one ingestion run did.
type Result struct {
	Fetched         int
	Saved           int
	Duplicates      int
	SummaryFailures int
}

// Service runs the ingestion pipeline. All collaborators are injected;
// Limiter paces summarization calls and Content is optional.
type Service struct {
	Articles repository.ArticleRepository
	Fetcher  Fetcher
	Summ     Summarizer
	Limiter  *rate.Limiter
	Content  ContentFetcher
}

// NewService wires an ingestion service with the default pacing of one
// summarization call per 500ms.
func NewService(articles repository.ArticleRepository, f Fetcher, s Summarizer) *Service {
	return &Service{
		Articles: articles,
		Fetcher:  f,
		Summ:     s,
		Limiter:  rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// Ingest validates the request and runs the pipeline.
//
// Fetch failures are absorbed: the run succeeds with zero articles saved.
// Summarization failures degrade to articles without summaries. Only
// validation and persistence report errors to the caller.
func (s *Service) Ingest(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	defer func() {
		metrics.RecordIngestDuration(req.SourceType, time.Since(start))
	}()

	articles := s.fetch(ctx, req)
	metrics.RecordArticlesFetched(req.SourceType, len(articles))

	result := Result{Fetched: len(articles)}
	if len(articles) == 0 {
		return result, nil
	}

	summarized := s.summarizeAll(ctx, articles, &result)

	fresh, err := s.dedup(ctx, summarized, &result)
	if err != nil {
		return Result{}, fmt.Errorf("ingest: dedup: %w", err)
	}

	saved, err := s.Articles.CreateBatch(ctx, fresh)
	if err != nil {
		return Result{}, fmt.Errorf("ingest: persist: %w", err)
	}

	// Rows dropped by the unique index count as duplicates, not saves.
	result.Duplicates += len(fresh) - saved
	result.Saved = saved

	metrics.RecordArticlesSaved(req.SourceType, saved)
	metrics.RecordArticlesDuplicated(result.Duplicates)

	slog.Info("ingestión completada",
		slog.String("source_type", req.SourceType),
		slog.Int("fetched", result.Fetched),
		slog.Int("saved", result.Saved),
		slog.Int("duplicates", result.Duplicates))
	return result, nil
}

// fetch dispatches to the source variant. A failed fetch degrades to an
// empty batch; it is never retried and never fails the run.
func (s *Service) fetch(ctx context.Context, req Request) []*entity.Article {
	var (
		articles []*entity.Article
		err      error
	)

	switch req.SourceType {
	case SourceNewsAPI:
		articles, err = s.Fetcher.TopHeadlines(ctx, HeadlinesQuery{
			APIKey:   req.APIKey,
			Country:  req.Country,
			Category: req.Category,
			PageSize: req.PageSize,
		})
	case SourceRSS:
		articles, err = s.Fetcher.FromFeed(ctx, req.RSSURL)
	case SourceScraping:
		articles, err = s.Fetcher.Scrape(ctx, ScrapeQuery{
			PageURL:         req.URL,
			TitleSelector:   req.TitleSelector,
			ContentSelector: req.ContentSelector,
		})
	}

	if err != nil {
		slog.Warn("fetch falló, se continúa sin artículos",
			slog.String("source_type", req.SourceType),
			slog.String("error", err.Error()))
		return nil
	}
	return articles
}

// summarizeAll runs summarization sequentially, pacing calls through the
// limiter. The output preserves input order and length; every element is a
// copy of its input with SummaryGeneratedAt stamped, whether or not a
// summary was produced.
func (s *Service) summarizeAll(ctx context.Context, articles []*entity.Article, result *Result) []*entity.Article {
	out := make([]*entity.Article, len(articles))
	for i, original := range articles {
		article := *original
		s.enrichContent(ctx, &article)

		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				// context cancelled; carry the rest through unsummarized
				stamped := time.Now().UTC()
				article.SummaryGeneratedAt = &stamped
				out[i] = &article
				result.SummaryFailures++
				continue
			}
		}

		summary, err := s.Summ.Summarize(ctx, &article)
		if err != nil {
			slog.Warn("no se pudo generar resumen",
				slog.String("title", article.Title),
				slog.String("error", err.Error()))
			result.SummaryFailures++
			metrics.RecordArticleSummarized(false)
		} else {
			article.Summary = &summary
			metrics.RecordArticleSummarized(true)
		}

		stamped := time.Now().UTC()
		article.SummaryGeneratedAt = &stamped
		out[i] = &article
	}
	return out
}

// enrichContent replaces thin content with the full page text when a
// content fetcher is wired. Failures keep the original content.
func (s *Service) enrichContent(ctx context.Context, article *entity.Article) {
	if s.Content == nil || article.URL == "" {
		return
	}
	if text.CountRunes(article.Content) >= contentEnrichThreshold {
		metrics.RecordContentFetch("skipped")
		return
	}

	full, err := s.Content.FetchContent(ctx, article.URL)
	if err != nil {
		metrics.RecordContentFetch("failure")
		slog.Debug("no se pudo obtener contenido completo",
			slog.String("url", article.URL),
			slog.String("error", err.Error()))
		return
	}
	metrics.RecordContentFetch("success")
	article.Content = full
}

// dedup drops articles whose URL is already stored or repeated within the
// batch. URL-less articles always pass.
func (s *Service) dedup(ctx context.Context, articles []*entity.Article, result *Result) ([]*entity.Article, error) {
	urls := make([]string, 0, len(articles))
	for _, a := range articles {
		if a.URL != "" {
			urls = append(urls, a.URL)
		}
	}

	known, err := s.Articles.ExistsByURLBatch(ctx, urls)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(articles))
	fresh := make([]*entity.Article, 0, len(articles))
	for _, a := range articles {
		if a.URL != "" && (known[a.URL] || seen[a.URL]) {
			result.Duplicates++
			continue
		}
		if a.URL != "" {
			seen[a.URL] = true
		}
		fresh = append(fresh, a)
	}
	return fresh, nil
}
