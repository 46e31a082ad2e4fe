// The worker ingests news on a schedule from every active configured
// source. Scraping sources are skipped: their CSS selectors are supplied
// per-request and are not part of the stored source record.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"

	"news-agent/internal/domain/entity"
	hhttp "news-agent/internal/handler/http"
	pgRepo "news-agent/internal/infra/adapter/persistence/postgres"
	"news-agent/internal/infra/db"
	"news-agent/internal/infra/fetcher"
	"news-agent/internal/infra/summarizer"
	"news-agent/internal/observability/logging"
	"news-agent/internal/repository"
	"news-agent/internal/usecase/ingest"
	"news-agent/pkg/config"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	waitForMigrations(logger, database)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sourceRepo := pgRepo.NewSourceRepo(database)
	ingestSvc := newIngestService(logger, database)

	runner := &scheduledRun{
		Sources: sourceRepo,
		Ingest:  ingestSvc,
		Logger:  logger,
		Timeout: config.GetEnvDuration("INGEST_TIMEOUT", 10*time.Minute),
	}

	schedule := config.GetEnvString("INGEST_SCHEDULE", "@every 6h")
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { runner.Run(ctx) }); err != nil {
		logger.Error("invalid cron schedule",
			slog.String("schedule", schedule),
			slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()
	logger.Info("worker started", slog.String("schedule", schedule))

	if config.GetEnvBool("INGEST_ON_START", true) {
		go runner.Run(ctx)
	}

	startMetricsServer(logger, database)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.Info("worker shutting down")
	cancel()
	<-c.Stop().Done()
}

// waitForMigrations blocks until the API's migrations have created the
// schema, so the worker can start in any order.
func waitForMigrations(logger *slog.Logger, database *sql.DB) {
	const probe = "SELECT 1 FROM news_sources LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

func newIngestService(logger *slog.Logger, database *sql.DB) *ingest.Service {
	cfg := summarizer.LoadConfig()

	var backend ingest.Summarizer
	switch kind := config.GetEnvString("SUMMARIZER_TYPE", "openai"); kind {
	case "claude":
		backend = summarizer.NewClaude(os.Getenv("ANTHROPIC_API_KEY"), cfg)
	case "noop":
		backend = summarizer.NewNoOp()
	default:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			logger.Warn("OPENAI_API_KEY not set, summaries will fail until configured")
		}
		backend = summarizer.NewOpenAI(key, cfg)
	}

	pacing := config.GetEnvDuration("SUMMARIZE_PACING", 500*time.Millisecond)
	return &ingest.Service{
		Articles: pgRepo.NewArticleRepo(database),
		Fetcher:  fetcher.NewClient(),
		Summ:     backend,
		Limiter:  rate.NewLimiter(rate.Every(pacing), 1),
		Content:  fetcher.NewReadabilityFetcher(),
	}
}

// scheduledRun ingests from every active source once per invocation.
type scheduledRun struct {
	Sources repository.SourceRepository
	Ingest  *ingest.Service
	Logger  *slog.Logger
	Timeout time.Duration
}

func (s *scheduledRun) Run(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, s.Timeout)
	defer cancel()

	sources, err := s.Sources.ListActive(ctx)
	if err != nil {
		s.Logger.Error("failed to list active sources", slog.Any("error", err))
		return
	}
	if len(sources) == 0 {
		s.Logger.Info("no active sources configured")
		return
	}

	for _, src := range sources {
		req, ok := s.requestFor(src.Name, src.SourceType, src.URL, src.APIKey)
		if !ok {
			continue
		}

		result, err := s.Ingest.Ingest(ctx, req)
		if err != nil {
			s.Logger.Error("scheduled ingest failed",
				slog.String("source", src.Name),
				slog.Any("error", err))
			continue
		}
		s.Logger.Info("scheduled ingest completed",
			slog.String("source", src.Name),
			slog.Int("fetched", result.Fetched),
			slog.Int("saved", result.Saved),
			slog.Int("duplicates", result.Duplicates))
	}
}

// requestFor maps a stored source onto an ingest request. Sources that
// cannot run unattended are skipped with a warning.
func (s *scheduledRun) requestFor(name, sourceType, url, apiKey string) (ingest.Request, bool) {
	switch sourceType {
	case entity.SourceTypeAPI:
		if apiKey == "" {
			s.Logger.Warn("api source has no stored api_key, skipping",
				slog.String("source", name))
			return ingest.Request{}, false
		}
		return ingest.Request{SourceType: ingest.SourceNewsAPI, APIKey: apiKey}, true
	case entity.SourceTypeRSS:
		if url == "" {
			s.Logger.Warn("rss source has no url, skipping",
				slog.String("source", name))
			return ingest.Request{}, false
		}
		return ingest.Request{SourceType: ingest.SourceRSS, RSSURL: url}, true
	case entity.SourceTypeScraping:
		s.Logger.Warn("scraping sources need per-request selectors, skipping",
			slog.String("source", name))
		return ingest.Request{}, false
	default:
		s.Logger.Warn("unknown source type, skipping",
			slog.String("source", name),
			slog.String("source_type", sourceType))
		return ingest.Request{}, false
	}
}

func startMetricsServer(logger *slog.Logger, database *sql.DB) {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: config.GetEnvString("VERSION", "dev")})

	addr := config.GetEnvString("WORKER_METRICS_ADDR", ":9090")
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("worker metrics server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.Any("error", err))
		}
	}()
}
