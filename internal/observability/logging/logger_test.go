package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"news-agent/internal/handler/http/requestid"
)

func TestNewLogger_DefaultsToJSON(t *testing.T) {
	t.Setenv("LOG_FORMAT", "")

	logger := NewLogger()
	if _, ok := logger.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("handler = %T, want *slog.JSONHandler", logger.Handler())
	}
}

func TestNewLogger_TextFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "text")

	logger := NewLogger()
	if _, ok := logger.Handler().(*slog.TextHandler); !ok {
		t.Fatalf("handler = %T, want *slog.TextHandler", logger.Handler())
	}
}

func TestWithRequestID_AnnotatesLogLines(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := requestid.WithRequestID(context.Background(), "req-42")
	WithRequestID(ctx, base).Info("hola")

	if !strings.Contains(buf.String(), `"request_id":"req-42"`) {
		t.Fatalf("log line missing request_id: %s", buf.String())
	}
}

func TestWithRequestID_NoIDReturnsSameLogger(t *testing.T) {
	base := slog.New(slog.DiscardHandler)
	if got := WithRequestID(context.Background(), base); got != base {
		t.Fatal("expected the original logger when the context has no request id")
	}
}
