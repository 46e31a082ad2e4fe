package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Page    int   `json:"page"`     // Current page number (1-based)
	PerPage int   `json:"per_page"` // Items per page
	Total   int64 `json:"total"`    // Total number of items across all pages
	Pages   int   `json:"pages"`    // Total number of pages
	HasNext bool  `json:"has_next"` // Whether a following page exists
	HasPrev bool  `json:"has_prev"` // Whether a preceding page exists
}

// NewMetadata builds response metadata for the given page position and total.
func NewMetadata(params Params, total int64) Metadata {
	pages := CalculateTotalPages(total, params.PerPage)
	return Metadata{
		Page:    params.Page,
		PerPage: params.PerPage,
		Total:   total,
		Pages:   pages,
		HasNext: params.Page < pages,
		HasPrev: params.Page > 1,
	}
}
