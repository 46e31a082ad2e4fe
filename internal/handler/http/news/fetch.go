package news

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"news-agent/internal/handler/http/respond"
	"news-agent/internal/observability/logging"
	"news-agent/internal/usecase/ingest"
)

type FetchHandler struct {
	Svc    *ingest.Service
	Logger *slog.Logger
}

// ServeHTTP triggers one ingestion run. An empty or absent body means the
// default source type with no parameters, which fails validation the same
// way an explicit empty request does.
func (h FetchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req ingest.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Svc.Ingest(ctx, req)
	if err != nil {
		logger.Error("ingestión falló",
			slog.String("source_type", req.SourceType),
			slog.String("error", err.Error()))
		respond.SafeError(w, err)
		return
	}

	if result.Fetched == 0 {
		respond.JSON(w, http.StatusOK, map[string]any{
			"success":        true,
			"message":        "No se encontraron nuevas noticias",
			"articles_saved": 0,
		})
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"message":        fmt.Sprintf("Se capturaron y guardaron %d noticias", result.Saved),
		"articles_saved": result.Saved,
	})
}
