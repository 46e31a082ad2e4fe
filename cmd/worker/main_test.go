package main

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"news-agent/internal/domain/entity"
	"news-agent/internal/usecase/ingest"
)

type fakeSourceRepo struct {
	sources []*entity.NewsSource
}

func (r *fakeSourceRepo) ListActive(context.Context) ([]*entity.NewsSource, error) {
	return r.sources, nil
}
func (r *fakeSourceRepo) Create(context.Context, *entity.NewsSource) error { return nil }

type fakeFetcher struct {
	headlineKeys []string
	feedURLs     []string
}

func (f *fakeFetcher) TopHeadlines(_ context.Context, q ingest.HeadlinesQuery) ([]*entity.Article, error) {
	f.headlineKeys = append(f.headlineKeys, q.APIKey)
	return nil, nil
}
func (f *fakeFetcher) FromFeed(_ context.Context, feedURL string) ([]*entity.Article, error) {
	f.feedURLs = append(f.feedURLs, feedURL)
	return nil, nil
}
func (f *fakeFetcher) Scrape(context.Context, ingest.ScrapeQuery) ([]*entity.Article, error) {
	return nil, nil
}

type fakeArticleRepo struct{}

func (fakeArticleRepo) ListPaginated(context.Context, int, int) ([]*entity.Article, error) {
	return nil, nil
}
func (fakeArticleRepo) Count(context.Context) (int64, error)                  { return 0, nil }
func (fakeArticleRepo) Get(context.Context, int64) (*entity.Article, error)   { return nil, nil }
func (fakeArticleRepo) ExistsByURLBatch(context.Context, []string) (map[string]bool, error) {
	return nil, nil
}
func (fakeArticleRepo) CreateBatch(_ context.Context, articles []*entity.Article) (int, error) {
	return len(articles), nil
}
func (fakeArticleRepo) PublishedSince(context.Context, time.Time, int) ([]*entity.Article, error) {
	return nil, nil
}
func (fakeArticleRepo) MostRecent(context.Context, int) ([]*entity.Article, error) {
	return nil, nil
}

type fakeSummarizer struct{}

func (fakeSummarizer) Summarize(context.Context, *entity.Article) (string, error) {
	return "Resumen.", nil
}

func TestScheduledRun_DispatchesPerSourceType(t *testing.T) {
	fetched := &fakeFetcher{}
	runner := &scheduledRun{
		Sources: &fakeSourceRepo{sources: []*entity.NewsSource{
			{Name: "NewsAPI", SourceType: entity.SourceTypeAPI, APIKey: "stored-key"},
			{Name: "NewsAPI sin clave", SourceType: entity.SourceTypeAPI},
			{Name: "Feed", SourceType: entity.SourceTypeRSS, URL: "https://f.example/rss"},
			{Name: "Portada", SourceType: entity.SourceTypeScraping, URL: "https://p.example"},
		}},
		Ingest: &ingest.Service{
			Articles: fakeArticleRepo{},
			Fetcher:  fetched,
			Summ:     fakeSummarizer{},
		},
		Logger:  slog.New(slog.DiscardHandler),
		Timeout: time.Minute,
	}

	runner.Run(context.Background())

	if len(fetched.headlineKeys) != 1 || fetched.headlineKeys[0] != "stored-key" {
		t.Errorf("headline calls = %v, want only the keyed source", fetched.headlineKeys)
	}
	if len(fetched.feedURLs) != 1 || fetched.feedURLs[0] != "https://f.example/rss" {
		t.Errorf("feed calls = %v", fetched.feedURLs)
	}
}

func TestRequestFor_SkipsUnknownType(t *testing.T) {
	runner := &scheduledRun{Logger: slog.New(slog.DiscardHandler)}

	if _, ok := runner.requestFor("X", "teletipo", "", ""); ok {
		t.Error("unknown type must be skipped")
	}
	if _, ok := runner.requestFor("X", entity.SourceTypeScraping, "https://p.example", ""); ok {
		t.Error("scraping sources must be skipped")
	}
}
