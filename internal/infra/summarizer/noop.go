package summarizer

import (
	"context"

	"news-agent/internal/domain/entity"
)

// NoOp is a summarizer that does not call any external API.
// It is useful for development and tests: summaries are deterministic
// truncations of the article text, digests a plain listing.
type NoOp struct{}

// NewNoOp creates a new NoOp summarizer.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Summarize returns the prepared article text truncated to 200 runes.
// The length floor applies exactly as in the real implementations.
func (n *NoOp) Summarize(_ context.Context, article *entity.Article) (string, error) {
	prepared := ArticleText(article)
	if tooShort(prepared) {
		return "", ErrContentTooShort
	}

	const maxLength = 200
	runes := []rune(prepared)
	if len(runes) > maxLength {
		prepared = string(runes[:maxLength]) + "..."
	}
	return CleanSummary(prepared), nil
}

// Digest returns the numbered article listing without editorializing.
func (n *NoOp) Digest(_ context.Context, articles []*entity.Article) (string, error) {
	return digestInput(articles), nil
}
