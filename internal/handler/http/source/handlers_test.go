package source

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"news-agent/internal/domain/entity"
	srcUC "news-agent/internal/usecase/source"
)

type stubRepo struct {
	active []*entity.NewsSource
}

func (r *stubRepo) ListActive(context.Context) ([]*entity.NewsSource, error) {
	return r.active, nil
}

func (r *stubRepo) Create(_ context.Context, src *entity.NewsSource) error {
	src.ID = 1
	src.CreatedAt = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	return nil
}

func newMux(repo *stubRepo) *http.ServeMux {
	mux := http.NewServeMux()
	Register(mux, srcUC.NewService(repo), slog.New(slog.DiscardHandler))
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response: %v (body=%q)", err, rec.Body.String())
	}
	return rec, decoded
}

func TestListHandler_ActiveOnly(t *testing.T) {
	repo := &stubRepo{active: []*entity.NewsSource{
		{ID: 1, Name: "El Diario", SourceType: entity.SourceTypeRSS, Active: true},
	}}

	rec, body := doRequest(t, newMux(repo), http.MethodGet, "/sources", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	sources := body["sources"].([]any)
	if len(sources) != 1 {
		t.Fatalf("sources len = %d", len(sources))
	}
	first := sources[0].(map[string]any)
	if first["name"] != "El Diario" || first["is_active"] != true {
		t.Errorf("source = %v", first)
	}
	if _, leaked := first["api_key"]; leaked {
		t.Error("api_key must not be exposed")
	}
}

func TestCreateHandler(t *testing.T) {
	rec, body := doRequest(t, newMux(&stubRepo{}), http.MethodPost, "/sources",
		`{"name":"NewsAPI principal","api_key":"secreta"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if body["message"] != "Fuente agregada exitosamente" {
		t.Errorf("message = %v", body["message"])
	}
	src := body["source"].(map[string]any)
	if src["source_type"] != "api" {
		t.Errorf("source_type = %v, want default api", src["source_type"])
	}
	if src["is_active"] != true {
		t.Errorf("is_active = %v, want default true", src["is_active"])
	}
	if _, leaked := src["api_key"]; leaked {
		t.Error("api_key must not be echoed back")
	}
}

func TestCreateHandler_MissingName(t *testing.T) {
	rec, body := doRequest(t, newMux(&stubRepo{}), http.MethodPost, "/sources", `{"url":"https://x.example"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["error"] != "Se requiere el nombre de la fuente" {
		t.Errorf("error = %v", body["error"])
	}
}
