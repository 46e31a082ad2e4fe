package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"news-agent/internal/domain/entity"
	"news-agent/internal/usecase/ingest"
)

// scrapeMaxArticles caps how many title matches are taken from one page.
const scrapeMaxArticles = 10

// scrapeDescriptionLimit caps the description extracted via ContentSelector.
const scrapeDescriptionLimit = 500

// Scrape extracts articles from an HTML page using CSS selectors.
// Each TitleSelector match becomes one article: its trimmed text is the
// title, its href (resolved absolute) the URL, and the page's host minus a
// leading "www." the source name. Scraped pages carry no machine-readable
// date, so published_at is the scrape time.
func (c *Client) Scrape(ctx context.Context, q ingest.ScrapeQuery) ([]*entity.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.PageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("Scrape: build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Scrape: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Scrape: HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Scrape: parse: %w", err)
	}

	base, err := url.Parse(q.PageURL)
	if err != nil {
		return nil, fmt.Errorf("Scrape: page url: %w", err)
	}

	sourceName := strings.TrimPrefix(base.Hostname(), "www.")
	now := time.Now().UTC()

	articles := make([]*entity.Article, 0, scrapeMaxArticles)
	doc.Find(q.TitleSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(articles) >= scrapeMaxArticles {
			return false
		}

		published := now
		article := &entity.Article{
			Title:       strings.TrimSpace(sel.Text()),
			URL:         resolveHref(base, sel),
			SourceName:  sourceName,
			PublishedAt: &published,
		}

		if q.ContentSelector != "" {
			if text := followingText(sel, q.ContentSelector); text != "" {
				article.Description = truncateRunes(text, scrapeDescriptionLimit)
			}
		}

		articles = append(articles, article)
		return true
	})

	slog.Info("scraped articles from page",
		slog.String("url", q.PageURL),
		slog.Int("count", len(articles)))
	return articles, nil
}

// resolveHref returns the element's href resolved against the page URL,
// or "" when the element carries none.
func resolveHref(base *url.URL, sel *goquery.Selection) string {
	href, ok := sel.Attr("href")
	if !ok || href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// followingText finds the nearest element matching selector that follows sel
// in document order, searching later siblings and their descendants, then
// walking up through the ancestors' later siblings.
func followingText(sel *goquery.Selection, selector string) string {
	for node := sel; node.Length() > 0; node = node.Parent() {
		for sib := node.Next(); sib.Length() > 0; sib = sib.Next() {
			if sib.Is(selector) {
				return strings.TrimSpace(sib.Text())
			}
			if found := sib.Find(selector).First(); found.Length() > 0 {
				return strings.TrimSpace(found.Text())
			}
		}
	}
	return ""
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
