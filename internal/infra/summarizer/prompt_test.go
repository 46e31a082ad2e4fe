package summarizer

import (
	"strings"
	"testing"
	"time"

	"news-agent/internal/domain/entity"
)

func TestArticleText_TruncatesContent(t *testing.T) {
	long := strings.Repeat("a", 1500)
	a := &entity.Article{Title: "T", Description: "D", Content: long}

	got := ArticleText(a)
	want := "T D " + strings.Repeat("a", 1000) + "..."
	if got != want {
		t.Errorf("ArticleText truncation wrong: len=%d", len(got))
	}
}

func TestArticleText_SkipsEmptyParts(t *testing.T) {
	a := &entity.Article{Title: "Solo título"}
	if got := ArticleText(a); got != "Solo título" {
		t.Errorf("ArticleText = %q", got)
	}
}

func TestTooShort(t *testing.T) {
	if !tooShort("corto") {
		t.Error("short text should be below the floor")
	}
	if tooShort(strings.Repeat("x", 50)) {
		t.Error("50 runes should clear the floor")
	}
	// 49 runes padded with whitespace still falls below the floor
	if !tooShort("  " + strings.Repeat("x", 49) + "  ") {
		t.Error("trimmed length is what counts")
	}
}

func TestCleanSummary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips spanish prefix", "Resumen: El gobierno anunció medidas.", "El gobierno anunció medidas."},
		{"strips english prefix", "Summary: Something happened.", "Something happened."},
		{"strips longer prefix", "El resumen es: Hubo elecciones", "Hubo elecciones."},
		{"collapses whitespace", "Una  cosa\n\notra   cosa.", "Una cosa otra cosa."},
		{"adds trailing period", "Sin punto final", "Sin punto final."},
		{"keeps existing period", "Ya termina.", "Ya termina."},
		{"empty stays empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanSummary(tt.in); got != tt.want {
				t.Errorf("CleanSummary(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDigestInput_SortsAndCaps(t *testing.T) {
	mk := func(title string, offset time.Duration) *entity.Article {
		ts := time.Now().Add(offset)
		return &entity.Article{Title: title, SourceName: "src", PublishedAt: &ts}
	}

	articles := []*entity.Article{
		mk("viejo", -6*time.Hour),
		mk("nuevo", -1*time.Hour),
		{Title: "sin fecha", SourceName: "src"},
		mk("medio", -3*time.Hour),
		mk("reciente", -2*time.Hour),
		mk("antiguo", -8*time.Hour),
		mk("anciano", -9*time.Hour),
	}

	got := digestInput(articles)

	if !strings.HasPrefix(got, "1. nuevo\n") {
		t.Errorf("newest article should lead:\n%s", got)
	}
	if strings.Contains(got, "6.") {
		t.Errorf("digest input must cap at five articles:\n%s", got)
	}
	// the dateless article sorts as oldest and falls outside the cap
	if strings.Contains(got, "sin fecha") {
		t.Errorf("dateless article should sort last and be dropped:\n%s", got)
	}
	if !strings.Contains(got, "   Fuente: src\n") {
		t.Errorf("listing must name the source:\n%s", got)
	}
}

func TestDigestInput_PrefersSummaryOverDescription(t *testing.T) {
	sum := "Resumen existente."
	articles := []*entity.Article{
		{Title: "a", Description: "descripción", Summary: &sum},
		{Title: "b", Description: "solo descripción"},
	}

	got := digestInput(articles)
	if !strings.Contains(got, "Resumen existente.") {
		t.Errorf("summary should be used when present:\n%s", got)
	}
	if !strings.Contains(got, "solo descripción") {
		t.Errorf("description is the fallback:\n%s", got)
	}
}

func TestDigestInput_Fallbacks(t *testing.T) {
	got := digestInput([]*entity.Article{{}})
	if !strings.Contains(got, "Sin título") || !strings.Contains(got, "Fuente desconocida") {
		t.Errorf("missing fallbacks:\n%s", got)
	}
}
