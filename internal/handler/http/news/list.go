package news

import (
	"log/slog"
	"net/http"

	"news-agent/internal/common/pagination"
	"news-agent/internal/handler/http/respond"
	"news-agent/internal/observability/logging"
	newsUC "news-agent/internal/usecase/news"
)

type ListHandler struct {
	Svc           *newsUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP returns one page of stored articles, newest first.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	params := pagination.ParseQueryParams(r, h.PaginationCfg)

	result, err := h.Svc.List(ctx, params)
	if err != nil {
		logger.Error("failed to list news",
			slog.Int("page", params.Page),
			slog.Int("per_page", params.PerPage),
			slog.String("error", err.Error()))
		respond.SafeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"news":       toDTOs(result.Articles),
		"pagination": result.Meta,
	})
}
