package news

import (
	"log/slog"
	"net/http"
	"time"

	"news-agent/internal/handler/http/respond"
	"news-agent/internal/observability/logging"
	newsUC "news-agent/internal/usecase/news"
)

type DigestHandler struct {
	Svc    *newsUC.Service
	Logger *slog.Logger
}

// ServeHTTP generates and returns the news digest.
func (h DigestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	result, err := h.Svc.Digest(ctx)
	if err != nil {
		logger.Error("digest falló", slog.String("error", err.Error()))
		respond.SafeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"digest":         result.Digest,
		"articles_count": result.ArticlesCount,
		"generated_at":   result.GeneratedAt.Format(time.RFC3339),
	})
}
