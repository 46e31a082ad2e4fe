package pagination

import (
	"net/http/httptest"
	"testing"
)

func TestCalculateOffset(t *testing.T) {
	tests := []struct {
		page, perPage, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 10, 20},
		{5, 50, 200},
	}
	for _, tt := range tests {
		if got := CalculateOffset(tt.page, tt.perPage); got != tt.want {
			t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tt.page, tt.perPage, got, tt.want)
		}
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 50, 2},
	}
	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata(Params{Page: 2, PerPage: 10}, 25)

	if meta.Pages != 3 {
		t.Errorf("Pages = %d, want 3", meta.Pages)
	}
	if !meta.HasNext {
		t.Error("HasNext = false, want true")
	}
	if !meta.HasPrev {
		t.Error("HasPrev = false, want true")
	}

	last := NewMetadata(Params{Page: 3, PerPage: 10}, 25)
	if last.HasNext {
		t.Error("last page HasNext = true, want false")
	}

	empty := NewMetadata(Params{Page: 1, PerPage: 10}, 0)
	if empty.Pages != 0 || empty.HasNext || empty.HasPrev {
		t.Errorf("empty metadata = %+v, want zero pages and no neighbors", empty)
	}
}

func TestParseQueryParams(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "page=3&per_page=20", 3, 20},
		{"per_page capped", "per_page=500", 1, 50},
		{"garbage falls back", "page=abc&per_page=-1", 1, 10},
		{"zero page falls back", "page=0", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/news?"+tt.query, nil)
			got := ParseQueryParams(r, cfg)
			if got.Page != tt.wantPage || got.PerPage != tt.wantPerPage {
				t.Errorf("ParseQueryParams(%q) = %+v, want page=%d per_page=%d",
					tt.query, got, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}
