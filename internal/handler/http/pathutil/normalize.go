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

// pathPatterns lists the dynamic routes, pre-compiled at init. Resource keys
// are UUIDs, so any non-slash segment counts as an id.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/posts/[^/]+$`), Template: "/api/posts/:id"},
	{Pattern: regexp.MustCompile(`^/api/podcasts/[^/]+$`), Template: "/api/podcasts/:id"},
	{Pattern: regexp.MustCompile(`^/api/startups/[^/]+$`), Template: "/api/startups/:id"},
}

// NormalizePath collapses per-resource URLs into templates so metrics labels
// keep a bounded cardinality. Static paths pass through unchanged.
//
//	NormalizePath("/api/posts/7ac4-...")  // "/api/posts/:id"
//	NormalizePath("/api/posts")           // "/api/posts" (unchanged)
//	NormalizePath("/health")              // "/health"   (unchanged)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
