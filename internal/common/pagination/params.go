package pagination

import (
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page    int // 1-based page number
	PerPage int // Items per page
}

// ParseQueryParams parses "page" and "per_page" from the request query string.
// Missing or unparsable values fall back to the configured defaults, and
// per_page is clamped to config.MaxPerPage. Parsing never fails: a bad value
// degrades to the default rather than rejecting the request.
func ParseQueryParams(r *http.Request, config Config) Params {
	params := Params{
		Page:    config.DefaultPage,
		PerPage: config.DefaultPerPage,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page >= 1 {
			params.Page = page
		}
	}

	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		if perPage, err := strconv.Atoi(perPageStr); err == nil && perPage >= 1 {
			params.PerPage = perPage
		}
	}

	if params.PerPage > config.MaxPerPage {
		params.PerPage = config.MaxPerPage
	}

	return params
}
