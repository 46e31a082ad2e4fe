// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and NewsSource, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a normalized news article.
// Fields that may legitimately be unknown (publication date, generated summary)
// are pointers so persistence and serialization can tell absent from zero.
type Article struct {
	ID                 int64
	Title              string
	Description        string
	Content            string
	URL                string
	ImageURL           string
	SourceName         string
	Author             string
	PublishedAt        *time.Time
	CreatedAt          time.Time
	Summary            *string
	SummaryGeneratedAt *time.Time
}

// Validate checks the minimum shape required before persisting an article.
func (a *Article) Validate() error {
	if a.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	return nil
}
