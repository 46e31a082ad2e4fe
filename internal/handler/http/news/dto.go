// Package news provides the HTTP handlers for news endpoints: listing,
// detail, on-demand ingestion and the digest.
package news

import (
	"time"

	"news-agent/internal/domain/entity"
)

// DTO is the JSON shape of one article.
type DTO struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Content            string     `json:"content"`
	URL                string     `json:"url"`
	URLToImage         string     `json:"url_to_image"`
	SourceName         string     `json:"source_name"`
	Author             string     `json:"author"`
	PublishedAt        *time.Time `json:"published_at"`
	CreatedAt          time.Time  `json:"created_at"`
	Summary            *string    `json:"summary"`
	SummaryGeneratedAt *time.Time `json:"summary_generated_at"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:                 a.ID,
		Title:              a.Title,
		Description:        a.Description,
		Content:            a.Content,
		URL:                a.URL,
		URLToImage:         a.ImageURL,
		SourceName:         a.SourceName,
		Author:             a.Author,
		PublishedAt:        a.PublishedAt,
		CreatedAt:          a.CreatedAt,
		Summary:            a.Summary,
		SummaryGeneratedAt: a.SummaryGeneratedAt,
	}
}

func toDTOs(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	return out
}
