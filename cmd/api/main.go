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

	"golang.org/x/time/rate"

	"news-agent/internal/common/pagination"
	"news-agent/internal/domain/entity"
	hhttp "news-agent/internal/handler/http"
	hnews "news-agent/internal/handler/http/news"
	"news-agent/internal/handler/http/requestid"
	hsrc "news-agent/internal/handler/http/source"
	pgRepo "news-agent/internal/infra/adapter/persistence/postgres"
	"news-agent/internal/infra/db"
	"news-agent/internal/infra/fetcher"
	"news-agent/internal/infra/summarizer"
	"news-agent/internal/observability/logging"
	"news-agent/internal/usecase/ingest"
	newsUC "news-agent/internal/usecase/news"
	srcUC "news-agent/internal/usecase/source"
	"news-agent/pkg/config"
)

// summarizerBackend is what the pipeline and the digest both need from one
// AI backend.
type summarizerBackend interface {
	Summarize(ctx context.Context, article *entity.Article) (string, error)
	Digest(ctx context.Context, articles []*entity.Article) (string, error)
}

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database)
	runServer(logger, handler)
}

func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// selectSummarizer picks the AI backend from SUMMARIZER_TYPE:
// "openai" (default), "claude", or "noop" for running without an AI key.
func selectSummarizer(logger *slog.Logger) summarizerBackend {
	cfg := summarizer.LoadConfig()

	switch kind := config.GetEnvString("SUMMARIZER_TYPE", "openai"); kind {
	case "claude":
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			logger.Warn("ANTHROPIC_API_KEY not set, summaries will fail until configured")
		}
		return summarizer.NewClaude(key, cfg)
	case "noop":
		logger.Info("summarizer disabled, using extractive fallback")
		return summarizer.NewNoOp()
	default:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			logger.Warn("OPENAI_API_KEY not set, summaries will fail until configured")
		}
		return summarizer.NewOpenAI(key, cfg)
	}
}

func setupServer(logger *slog.Logger, database *sql.DB) http.Handler {
	articleRepo := pgRepo.NewArticleRepo(database)
	sourceRepo := pgRepo.NewSourceRepo(database)

	aiBackend := selectSummarizer(logger)
	pacing := config.GetEnvDuration("SUMMARIZE_PACING", 500*time.Millisecond)

	ingestSvc := &ingest.Service{
		Articles: articleRepo,
		Fetcher:  fetcher.NewClient(),
		Summ:     aiBackend,
		Limiter:  rate.NewLimiter(rate.Every(pacing), 1),
		Content:  fetcher.NewReadabilityFetcher(),
	}
	newsSvc := newsUC.NewService(articleRepo, aiBackend)
	sourceSvc := srcUC.NewService(sourceRepo)

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	hnews.Register(mux, newsSvc, ingestSvc, paginationCfg, logger)
	hsrc.Register(mux, sourceSvc, logger)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version()})
	mux.Handle("GET /readyz", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /livez", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	maxBody := int64(config.GetEnvInt("MAX_REQUEST_BODY_BYTES", 1<<20))
	return hhttp.Chain(mux,
		requestid.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.Metrics(),
		hhttp.LimitRequestBody(maxBody),
	)
}

func version() string {
	return config.GetEnvString("VERSION", "dev")
}

func runServer(logger *slog.Logger, handler http.Handler) {
	addr := config.GetEnvString("LISTEN_ADDR", ":8080")
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		// Ingestion runs inline in POST /news/fetch; summarization pacing
		// makes those requests slow by nature.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
		}
		close(shutdownDone)
	}()

	logger.Info("server listening", slog.String("addr", addr), slog.String("version", version()))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	<-shutdownDone
}
