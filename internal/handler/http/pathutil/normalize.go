package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization so normalization stays cheap on the hot path.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/\d+/comments$`), Template: "/articles/:id/comments"},
	{Pattern: regexp.MustCompile(`^/articles/\d+$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/comments/\d+$`), Template: "/comments/:id"},
	{Pattern: regexp.MustCompile(`^/users/\d+$`), Template: "/users/:id"},
	{Pattern: regexp.MustCompile(`^/storage/.+$`), Template: "/storage/:path"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /articles/123) to template format (e.g., /articles/:id)
// and collapses served image paths to a single label. Static paths and search endpoints
// remain unchanged.
//
// Examples:
//
//	NormalizePath("/articles/123")          // "/articles/:id"
//	NormalizePath("/articles/123/comments") // "/articles/:id/comments"
//	NormalizePath("/storage/abc123.jpg")    // "/storage/:path"
//	NormalizePath("/articles/search")       // "/articles/search" (unchanged)
//	NormalizePath("/health")                // "/health" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/articles/123?page=1")   // "/articles/:id"
//	NormalizePath("/articles/123/")         // "/articles/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found: static paths like /health and /metrics pass through unchanged.
	return path
}
