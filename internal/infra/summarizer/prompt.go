// Package summarizer provides AI-powered summarization and digest generation
// for news articles, with adapters for the OpenAI and Anthropic APIs.
// All user-facing text it produces is Spanish.
package summarizer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"news-agent/internal/domain/entity"
	"news-agent/internal/utils/text"
)

const (
	// minSummarizableRunes is the minimum article text length worth an API call.
	minSummarizableRunes = 50

	// contentTruncateRunes caps article content in the prompt to keep token
	// usage bounded.
	contentTruncateRunes = 1000

	// maxDigestArticles caps how many articles feed one digest.
	maxDigestArticles = 5
)

const (
	summarySystemPrompt = "Eres un periodista experto que crea resúmenes concisos y objetivos de noticias en español."
	digestSystemPrompt  = "Eres un editor de noticias experto que crea digests informativos y bien estructurados en español."
)

// ArticleText joins title, description, and truncated content into the text
// block submitted for summarization.
func ArticleText(a *entity.Article) string {
	parts := make([]string, 0, 3)
	if a.Title != "" {
		parts = append(parts, a.Title)
	}
	if a.Description != "" {
		parts = append(parts, a.Description)
	}
	if a.Content != "" {
		content := a.Content
		if runes := []rune(content); len(runes) > contentTruncateRunes {
			content = string(runes[:contentTruncateRunes]) + "..."
		}
		parts = append(parts, content)
	}
	return strings.Join(parts, " ")
}

// tooShort reports whether the prepared text is below the summarization floor.
func tooShort(prepared string) bool {
	return text.CountRunes(strings.TrimSpace(prepared)) < minSummarizableRunes
}

func buildSummaryPrompt(a *entity.Article, prepared string) string {
	return fmt.Sprintf(`Por favor, resume el siguiente artículo de noticias en español de manera concisa y objetiva.
El resumen debe:
- Ser de 2-3 oraciones máximo
- Capturar los puntos principales
- Mantener un tono neutral y periodístico
- Estar en español

Artículo:
Título: %s
Contenido: %s

Resumen:`, a.Title, prepared)
}

func buildDigestPrompt(articlesText string) string {
	return fmt.Sprintf(`Crea un digest de noticias en español basado en los siguientes artículos.
El digest debe:
- Ser un resumen ejecutivo de las noticias más importantes
- Estar bien estructurado y ser fácil de leer
- Mantener un tono profesional y periodístico
- Incluir los puntos más relevantes de cada noticia
- Tener entre 200-300 palabras

Noticias:
%s

Digest de Noticias:`, articlesText)
}

// digestInput sorts articles newest first (unknown dates sort as oldest),
// keeps the top maxDigestArticles, and renders the numbered listing fed to
// the digest prompt.
func digestInput(articles []*entity.Article) string {
	sorted := make([]*entity.Article, len(articles))
	copy(sorted, articles)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].PublishedAt, sorted[j].PublishedAt
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})

	if len(sorted) > maxDigestArticles {
		sorted = sorted[:maxDigestArticles]
	}

	var b strings.Builder
	for i, a := range sorted {
		title := a.Title
		if title == "" {
			title = "Sin título"
		}
		source := a.SourceName
		if source == "" {
			source = "Fuente desconocida"
		}
		body := a.Description
		if a.Summary != nil && *a.Summary != "" {
			body = *a.Summary
		}

		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		fmt.Fprintf(&b, "   Fuente: %s\n", source)
		fmt.Fprintf(&b, "   %s\n\n", body)
	}
	return b.String()
}

var (
	summaryPrefixes = []string{
		"Resumen:",
		"El resumen es:",
		"En resumen:",
		"Summary:",
	}
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// CleanSummary normalizes the model output: known lead-in prefixes are
// stripped, whitespace runs collapse to single spaces, and the result ends
// with a period.
func CleanSummary(summary string) string {
	summary = strings.TrimSpace(summary)

	for _, prefix := range summaryPrefixes {
		if strings.HasPrefix(summary, prefix) {
			summary = strings.TrimSpace(strings.TrimPrefix(summary, prefix))
		}
	}

	summary = strings.TrimSpace(whitespaceRun.ReplaceAllString(summary, " "))

	if summary != "" && !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	return summary
}
