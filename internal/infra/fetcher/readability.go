package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-shiori/go-readability"

	"news-agent/internal/domain/entity"
	"news-agent/internal/resilience/circuitbreaker"
)

// readabilityMaxBody caps fetched pages at 10 MB.
const readabilityMaxBody = 10 << 20

// ReadabilityFetcher extracts full article text from a page URL using the
// Mozilla Readability algorithm. It is used to enrich feed entries whose
// content is too thin to summarize well.
type ReadabilityFetcher struct {
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewReadabilityFetcher creates a content fetcher with SSRF-checked
// redirects and a circuit breaker shared across all fetches.
func NewReadabilityFetcher() *ReadabilityFetcher {
	return &ReadabilityFetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("too many redirects (%d)", len(via))
				}
				return entity.ValidateURL(req.URL.String())
			},
		},
		breaker: circuitbreaker.New(circuitbreaker.ContentFetchConfig()),
	}
}

// FetchContent downloads the page and returns its extracted article text.
func (f *ReadabilityFetcher) FetchContent(ctx context.Context, pageURL string) (string, error) {
	if err := entity.ValidateURL(pageURL); err != nil {
		return "", err
	}

	result, err := f.breaker.Execute(func() (interface{}, error) {
		return f.doFetch(ctx, pageURL)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (f *ReadabilityFetcher) doFetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("FetchContent: build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("FetchContent: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("FetchContent: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, readabilityMaxBody+1))
	if err != nil {
		return "", fmt.Errorf("FetchContent: read body: %w", err)
	}
	if len(body) > readabilityMaxBody {
		return "", fmt.Errorf("FetchContent: response exceeds %d bytes", readabilityMaxBody)
	}

	parsedURL, _ := url.Parse(pageURL)
	if resp.Request != nil && resp.Request.URL != nil {
		parsedURL = resp.Request.URL
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		return "", fmt.Errorf("FetchContent: extract: %w", err)
	}
	if article.TextContent == "" {
		return "", fmt.Errorf("FetchContent: no readable content in %s", pageURL)
	}
	return article.TextContent, nil
}
