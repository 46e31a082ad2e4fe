package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"news-agent/internal/domain/entity"
	"news-agent/internal/observability/metrics"
	"news-agent/internal/resilience/circuitbreaker"
)

// OpenAI generates summaries and digests through OpenAI chat completions.
// Calls run through a circuit breaker; there is no retry, a failed call
// simply leaves the article without a summary.
type OpenAI struct {
	client  *openai.Client
	breaker *circuitbreaker.CircuitBreaker
	config  Config
}

// NewOpenAI creates an OpenAI-backed summarizer.
func NewOpenAI(apiKey string, config Config) *OpenAI {
	slog.Info("initialized openai summarizer",
		slog.String("model", config.Model))

	return &OpenAI{
		client:  openai.NewClient(apiKey),
		breaker: circuitbreaker.New(circuitbreaker.SummarizerConfig("openai-api")),
		config:  config,
	}
}

// NewOpenAIWithClient creates a summarizer over a preconfigured API client.
// Tests use this to point at a local server.
func NewOpenAIWithClient(client *openai.Client, config Config) *OpenAI {
	return &OpenAI{
		client:  client,
		breaker: circuitbreaker.New(circuitbreaker.SummarizerConfig("openai-api")),
		config:  config,
	}
}

// Summarize generates a short Spanish summary for one article.
// Articles below the length floor return ErrContentTooShort without an API call.
func (o *OpenAI) Summarize(ctx context.Context, article *entity.Article) (string, error) {
	prepared := ArticleText(article)
	if tooShort(prepared) {
		slog.Warn("texto insuficiente para resumir",
			slog.String("title", article.Title))
		return "", ErrContentTooShort
	}

	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	start := time.Now()
	result, err := o.breaker.Execute(func() (interface{}, error) {
		return o.chat(ctx, summarySystemPrompt, buildSummaryPrompt(article, prepared),
			o.config.SummaryMaxTokens, o.config.SummaryTemperature)
	})
	metrics.RecordSummarizationDuration(time.Since(start))

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			slog.Warn("openai circuit breaker open, request rejected",
				slog.String("state", o.breaker.State().String()))
		}
		return "", fmt.Errorf("openai summarize: %w", err)
	}

	summary := CleanSummary(result.(string))
	slog.Info("resumen generado",
		slog.String("title", article.Title))
	return summary, nil
}

// Digest generates an executive digest in Spanish from the given articles.
func (o *OpenAI) Digest(ctx context.Context, articles []*entity.Article) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	result, err := o.breaker.Execute(func() (interface{}, error) {
		return o.chat(ctx, digestSystemPrompt, buildDigestPrompt(digestInput(articles)),
			o.config.DigestMaxTokens, o.config.DigestTemperature)
	})
	if err != nil {
		return "", fmt.Errorf("openai digest: %w", err)
	}

	slog.Info("digest de noticias generado")
	return result.(string), nil
}

func (o *OpenAI) chat(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
