package source

import (
	"log/slog"
	"net/http"

	"news-agent/internal/handler/http/respond"
	"news-agent/internal/observability/logging"
	srcUC "news-agent/internal/usecase/source"
)

type ListHandler struct {
	Svc    *srcUC.Service
	Logger *slog.Logger
}

// ServeHTTP returns the active sources.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	sources, err := h.Svc.List(ctx)
	if err != nil {
		logger.Error("failed to list sources", slog.String("error", err.Error()))
		respond.SafeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"sources": toDTOs(sources),
	})
}
