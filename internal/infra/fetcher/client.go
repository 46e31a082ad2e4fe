// Package fetcher gathers articles from the three supported source kinds:
// the NewsAPI top-headlines endpoint, RSS/Atom feeds, and scraped HTML pages.
// All of them normalize into entity.Article.
package fetcher

import (
	"net/http"
	"time"
)

// browserUserAgent is sent on scraping and headline requests. Several news
// sites serve stripped-down or blocked pages to non-browser agents.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// defaultHeadlinesEndpoint is the NewsAPI top-headlines URL.
const defaultHeadlinesEndpoint = "https://newsapi.org/v2/top-headlines"

// Client fetches articles from external sources over a shared HTTP client.
// Endpoints are fields so tests can point them at local servers.
type Client struct {
	http         *http.Client
	headlinesURL string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithHeadlinesEndpoint overrides the NewsAPI endpoint.
func WithHeadlinesEndpoint(u string) Option {
	return func(c *Client) { c.headlinesURL = u }
}

// NewClient creates a fetcher client with a 30 second request timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:         &http.Client{Timeout: 30 * time.Second},
		headlinesURL: defaultHeadlinesEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
