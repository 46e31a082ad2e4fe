// Package source manages the configured news sources.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news-agent/internal/domain/entity"
	"news-agent/internal/repository"
)

// CreatedMessage confirms a successful registration.
const CreatedMessage = "Fuente agregada exitosamente"

// CreateInput carries the fields accepted for a new source.
// An absent SourceType means "api"; Active defaults to true.
type CreateInput struct {
	Name       string `json:"name"`
	URL        string `json:"url,omitempty"`
	SourceType string `json:"source_type,omitempty"`
	APIKey     string `json:"api_key,omitempty"`
	Active     *bool  `json:"is_active,omitempty"`
}

// Service manages news sources.
type Service struct {
	sources repository.SourceRepository
}

func NewService(sources repository.SourceRepository) *Service {
	return &Service{sources: sources}
}

// List returns the active sources.
func (s *Service) List(ctx context.Context) ([]*entity.NewsSource, error) {
	sources, err := s.sources.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("source: list: %w", err)
	}
	return sources, nil
}

// Create validates and stores a new source.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.NewsSource, error) {
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	src := &entity.NewsSource{
		Name:       in.Name,
		URL:        in.URL,
		SourceType: in.SourceType,
		APIKey:     in.APIKey,
		Active:     active,
		CreatedAt:  time.Now().UTC(),
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	if err := s.sources.Create(ctx, src); err != nil {
		return nil, fmt.Errorf("source: create: %w", err)
	}

	slog.Info("fuente registrada",
		slog.String("name", src.Name),
		slog.String("source_type", src.SourceType))
	return src, nil
}
