package entity

import (
	"fmt"
	"time"
)

// Source types accepted by the registry.
const (
	SourceTypeAPI      = "api"
	SourceTypeRSS      = "rss"
	SourceTypeScraping = "scraping"
)

// NewsSource represents a registered news provider.
// APIKey is stored for scheduled ingestion and must never be serialized.
type NewsSource struct {
	ID         int64
	Name       string
	URL        string
	SourceType string
	APIKey     string
	Active     bool
	CreatedAt  time.Time
}

// Validate validates the NewsSource entity fields.
// An empty SourceType defaults to "api".
func (s *NewsSource) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "Se requiere el nombre de la fuente"}
	}

	if s.SourceType == "" {
		s.SourceType = SourceTypeAPI
	}

	switch s.SourceType {
	case SourceTypeAPI, SourceTypeRSS, SourceTypeScraping:
	default:
		return &ValidationError{
			Field:   "source_type",
			Message: fmt.Sprintf("invalid source_type: %s (must be api, rss, or scraping)", s.SourceType),
		}
	}

	if s.URL != "" {
		if err := ValidateURL(s.URL); err != nil {
			return err
		}
	}

	return nil
}
