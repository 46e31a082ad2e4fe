package source

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"news-agent/internal/handler/http/respond"
	"news-agent/internal/observability/logging"
	srcUC "news-agent/internal/usecase/source"
)

type CreateHandler struct {
	Svc    *srcUC.Service
	Logger *slog.Logger
}

// ServeHTTP registers a new source.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var in srcUC.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Error(w, http.StatusBadRequest, "Se requiere el nombre de la fuente")
		return
	}

	created, err := h.Svc.Create(ctx, in)
	if err != nil {
		logger.Warn("source creation rejected", slog.String("error", err.Error()))
		respond.SafeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": srcUC.CreatedMessage,
		"source":  toDTO(created),
	})
}
