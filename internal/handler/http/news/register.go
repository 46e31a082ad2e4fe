package news

import (
	"log/slog"
	"net/http"

	"news-agent/internal/common/pagination"
	"news-agent/internal/usecase/ingest"
	newsUC "news-agent/internal/usecase/news"
)

// Register wires the news routes onto the mux.
func Register(mux *http.ServeMux, svc *newsUC.Service, ingestSvc *ingest.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /news", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("POST /news/fetch", FetchHandler{Svc: ingestSvc, Logger: logger})
	mux.Handle("GET /news/digest", DigestHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /news/{id}", GetHandler{Svc: svc})
}
