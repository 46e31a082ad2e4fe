package source

import (
	"log/slog"
	"net/http"

	srcUC "news-agent/internal/usecase/source"
)

// Register wires the source routes onto the mux.
func Register(mux *http.ServeMux, svc *srcUC.Service, logger *slog.Logger) {
	mux.Handle("GET /sources", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("POST /sources", CreateHandler{Svc: svc, Logger: logger})
}
