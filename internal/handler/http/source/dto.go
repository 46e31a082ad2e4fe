// Package source provides HTTP handlers for managing news sources.
package source

import (
	"time"

	"news-agent/internal/domain/entity"
)

// DTO is the JSON shape of one source. The API key is write-only and never
// echoed back.
type DTO struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	SourceType string    `json:"source_type"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDTO(s *entity.NewsSource) DTO {
	return DTO{
		ID:         s.ID,
		Name:       s.Name,
		URL:        s.URL,
		SourceType: s.SourceType,
		IsActive:   s.Active,
		CreatedAt:  s.CreatedAt,
	}
}

func toDTOs(sources []*entity.NewsSource) []DTO {
	out := make([]DTO, 0, len(sources))
	for _, s := range sources {
		out = append(out, toDTO(s))
	}
	return out
}
