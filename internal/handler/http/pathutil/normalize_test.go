package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/news/123", "/api/news/:id"},
		{"/api/news", "/api/news"},
		{"/api/news/digest", "/api/news/digest"},
		{"/api/sources", "/api/sources"},
		{"/", "/"},
		{"/api/news/0042", "/api/news/:id"},
	}
	for _, tt := range tests {
		if got := NormalizePath(tt.path); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
