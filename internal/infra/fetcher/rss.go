package fetcher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmcdole/gofeed"

	"news-agent/internal/domain/entity"
)

// FromFeed fetches and parses an RSS/Atom feed and maps each entry to an
// article. The feed title becomes the source name for every entry; feeds
// carry no usable image URL in this mapping.
func (c *Client) FromFeed(ctx context.Context, feedURL string) ([]*entity.Article, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = browserUserAgent
	fp.Client = c.http

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("FromFeed: parse %s: %w", feedURL, err)
	}

	articles := make([]*entity.Article, 0, len(feed.Items))
	for _, it := range feed.Items {
		author := ""
		if it.Author != nil {
			author = it.Author.Name
		}

		articles = append(articles, &entity.Article{
			Title:       it.Title,
			Description: it.Description,
			Content:     it.Content,
			URL:         it.Link,
			ImageURL:    "",
			SourceName:  feed.Title,
			Author:      author,
			// The raw date string goes through the normalizer so feed
			// entries get the same absent/unparseable policy as the rest.
			PublishedAt: NormalizeDate(it.Published),
		})
	}

	slog.Info("fetched articles from feed",
		slog.String("feed", feedURL),
		slog.Int("count", len(articles)))
	return articles, nil
}
