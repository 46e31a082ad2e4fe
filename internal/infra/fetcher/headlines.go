package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"news-agent/internal/domain/entity"
	"news-agent/internal/usecase/ingest"
)

type headlinesResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Author      string `json:"author"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
		Content     string `json:"content"`
	} `json:"articles"`
}

// TopHeadlines fetches current headlines from NewsAPI.
// The response is only accepted when its embedded status field is "ok";
// NewsAPI reports quota and key problems with HTTP 200 plus status "error".
func (c *Client) TopHeadlines(ctx context.Context, q ingest.HeadlinesQuery) ([]*entity.Article, error) {
	if q.Country == "" {
		q.Country = "us"
	}
	if q.PageSize <= 0 {
		q.PageSize = 20
	}

	params := url.Values{}
	params.Set("apiKey", q.APIKey)
	params.Set("country", q.Country)
	params.Set("pageSize", strconv.Itoa(q.PageSize))
	if q.Category != "" {
		params.Set("category", q.Category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.headlinesURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("TopHeadlines: build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("TopHeadlines: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TopHeadlines: HTTP %d", resp.StatusCode)
	}

	var body headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("TopHeadlines: decode: %w", err)
	}

	if body.Status != "ok" {
		return nil, fmt.Errorf("TopHeadlines: api status %q: %s", body.Status, body.Message)
	}

	articles := make([]*entity.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		articles = append(articles, &entity.Article{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			SourceName:  a.Source.Name,
			Author:      a.Author,
			PublishedAt: NormalizeDate(a.PublishedAt),
		})
	}

	slog.Info("fetched headlines from NewsAPI",
		slog.Int("count", len(articles)),
		slog.String("country", q.Country))
	return articles, nil
}
