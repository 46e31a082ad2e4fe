package ingest

import (
	"context"

	"news-agent/internal/domain/entity"
)

// HeadlinesQuery holds parameters for a NewsAPI top-headlines fetch.
type HeadlinesQuery struct {
	APIKey   string
	Country  string // default "us"
	Category string // optional
	PageSize int    // default 20
}

// ScrapeQuery holds parameters for scraping one HTML page.
type ScrapeQuery struct {
	PageURL         string
	TitleSelector   string
	ContentSelector string // optional
}

// Fetcher retrieves raw articles from the supported source kinds.
type Fetcher interface {
	TopHeadlines(ctx context.Context, q HeadlinesQuery) ([]*entity.Article, error)
	FromFeed(ctx context.Context, feedURL string) ([]*entity.Article, error)
	Scrape(ctx context.Context, q ScrapeQuery) ([]*entity.Article, error)
}

// Summarizer produces a short summary for one article.
// Implementations signal articles below the length floor with an error;
// the pipeline treats every summarization error as "no summary".
type Summarizer interface {
	Summarize(ctx context.Context, article *entity.Article) (string, error)
}

// ContentFetcher retrieves the full text of an article page.
// It is optional: when wired, thin feed entries are enriched before
// summarization.
type ContentFetcher interface {
	FetchContent(ctx context.Context, pageURL string) (string, error)
}
