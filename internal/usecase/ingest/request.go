package ingest

import "news-agent/internal/domain/entity"

// Source type discriminators accepted by POST /news/fetch.
const (
	SourceNewsAPI  = "newsapi"
	SourceRSS      = "rss"
	SourceScraping = "scraping"
)

// Request describes one on-demand ingestion run.
// SourceType selects the variant; the other fields apply per variant.
type Request struct {
	SourceType string `json:"source_type"`

	// newsapi
	APIKey   string `json:"api_key,omitempty"`
	Country  string `json:"country,omitempty"`
	Category string `json:"category,omitempty"`
	PageSize int    `json:"page_size,omitempty"`

	// rss
	RSSURL string `json:"rss_url,omitempty"`

	// scraping
	URL             string `json:"url,omitempty"`
	TitleSelector   string `json:"title_selector,omitempty"`
	ContentSelector string `json:"content_selector,omitempty"`
}

// Validate checks the per-variant required parameters.
// An absent source_type means newsapi.
func (r *Request) Validate() error {
	if r.SourceType == "" {
		r.SourceType = SourceNewsAPI
	}

	switch r.SourceType {
	case SourceNewsAPI:
		if r.APIKey == "" {
			return &entity.ValidationError{Field: "api_key", Message: "Se requiere api_key para NewsAPI"}
		}
	case SourceRSS:
		if r.RSSURL == "" {
			return &entity.ValidationError{Field: "rss_url", Message: "Se requiere rss_url para RSS"}
		}
	case SourceScraping:
		if r.URL == "" || r.TitleSelector == "" {
			return &entity.ValidationError{Field: "url", Message: "Se requieren url y title_selector para scraping"}
		}
	default:
		return &entity.ValidationError{Field: "source_type", Message: "Tipo de fuente no válido"}
	}

	return nil
}
