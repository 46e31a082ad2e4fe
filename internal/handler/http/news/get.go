package news

import (
	"errors"
	"net/http"

	"news-agent/internal/handler/http/pathutil"
	"news-agent/internal/handler/http/respond"
	newsUC "news-agent/internal/usecase/news"
)

type GetHandler struct{ Svc *newsUC.Service }

// ServeHTTP returns one article by ID.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, newsUC.ErrArticleNotFound) {
			respond.Error(w, http.StatusNotFound, "Noticia no encontrada")
			return
		}
		respond.SafeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"news":    toDTO(article),
	})
}
