package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "article by ID", path: "/articles/123", expected: "/articles/:id"},
		{name: "another article ID", path: "/articles/456", expected: "/articles/:id"},
		{name: "article comments", path: "/articles/123/comments", expected: "/articles/:id/comments"},
		{name: "comment by ID", path: "/comments/9", expected: "/comments/:id"},
		{name: "user by ID", path: "/users/7", expected: "/users/:id"},
		{name: "stored image", path: "/storage/4f2c9a.jpg", expected: "/storage/:path"},
		{name: "articles list", path: "/articles", expected: "/articles"},
		{name: "search endpoint", path: "/articles/search", expected: "/articles/search"},
		{name: "stats", path: "/stats", expected: "/stats"},
		{name: "health", path: "/health", expected: "/health"},
		{name: "metrics", path: "/metrics", expected: "/metrics"},
		{name: "root", path: "/", expected: "/"},
		{name: "unknown path", path: "/unknown/path/123", expected: "/unknown/path/123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.expected {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNormalizePath_TrailingSlash(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/articles/123/", "/articles/:id"},
		{"/comments/9/", "/comments/:id"},
		{"/articles/", "/articles"},
		{"/", "/"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.path); got != tt.expected {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestNormalizePath_QueryParameters(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/articles/123?page=1", "/articles/:id"},
		{"/articles?performance_test=1", "/articles"},
		{"/articles/search?q=go", "/articles/search"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.path); got != tt.expected {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

// Many distinct IDs must collapse into a handful of metric labels.
func TestNormalizePath_Cardinality(t *testing.T) {
	paths := []string{
		"/articles/1", "/articles/2", "/articles/300",
		"/articles/1/comments", "/articles/2/comments",
		"/comments/5", "/comments/6",
		"/storage/a.jpg", "/storage/b.jpg",
	}

	seen := make(map[string]struct{})
	for _, p := range paths {
		seen[NormalizePath(p)] = struct{}{}
	}
	if len(seen) != 4 {
		t.Errorf("normalized label count = %d, want 4 (%v)", len(seen), seen)
	}
}
