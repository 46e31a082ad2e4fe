package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sony/gobreaker"

	"news-agent/internal/domain/entity"
	"news-agent/internal/resilience/circuitbreaker"
)

// Claude generates summaries and digests through Anthropic's Messages API.
// It mirrors the OpenAI implementation: same prompts, limits, and circuit
// breaker behavior.
type Claude struct {
	client  anthropic.Client
	breaker *circuitbreaker.CircuitBreaker
	config  Config
}

// NewClaude creates a Claude-backed summarizer.
// The model comes from SUMMARIZER_MODEL when it names a Claude model;
// otherwise the current Sonnet model is used.
func NewClaude(apiKey string, config Config) *Claude {
	if config.Model == "" || config.Model == DefaultConfig().Model {
		config.Model = string(anthropic.ModelClaudeSonnet4_5_20250929)
	}

	slog.Info("initialized claude summarizer",
		slog.String("model", config.Model))

	return &Claude{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		breaker: circuitbreaker.New(circuitbreaker.SummarizerConfig("claude-api")),
		config:  config,
	}
}

// Summarize generates a short Spanish summary for one article.
// Articles below the length floor return ErrContentTooShort without an API call.
func (c *Claude) Summarize(ctx context.Context, article *entity.Article) (string, error) {
	prepared := ArticleText(article)
	if tooShort(prepared) {
		slog.Warn("texto insuficiente para resumir",
			slog.String("title", article.Title))
		return "", ErrContentTooShort
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.message(ctx, summarySystemPrompt, buildSummaryPrompt(article, prepared),
			c.config.SummaryMaxTokens)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			slog.Warn("claude circuit breaker open, request rejected",
				slog.String("state", c.breaker.State().String()))
		}
		return "", fmt.Errorf("claude summarize: %w", err)
	}

	return CleanSummary(result.(string)), nil
}

// Digest generates an executive digest in Spanish from the given articles.
func (c *Claude) Digest(ctx context.Context, articles []*entity.Article) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.message(ctx, digestSystemPrompt, buildDigestPrompt(digestInput(articles)),
			c.config.DigestMaxTokens)
	})
	if err != nil {
		return "", fmt.Errorf("claude digest: %w", err)
	}
	return result.(string), nil
}

func (c *Claude) message(ctx context.Context, system, user string, maxTokens int) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(user),
			),
		},
	})
	if err != nil {
		return "", err
	}
	if len(message.Content) == 0 {
		return "", ErrEmptyResponse
	}

	block, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", ErrEmptyResponse
	}
	return block.Text, nil
}
