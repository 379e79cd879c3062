// Package pathutil provides helpers for working with URL paths: extracting
// resource keys and normalizing paths for metrics labels.
package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidKey is returned when the resource key in the URL path is unusable.
var ErrInvalidKey = errors.New("invalid key")

// ExtractKey removes prefix from path and returns the remaining resource key.
// Keys are opaque UUID strings, so the only structural requirements are that
// the remainder is non-empty and contains no further path segments.
//
//	key, err := ExtractKey("/api/posts/7ac4...", "/api/posts/")
func ExtractKey(path, prefix string) (string, error) {
	key := strings.TrimPrefix(path, prefix)
	if key == "" || strings.Contains(key, "/") {
		return "", ErrInvalidKey
	}
	return key, nil
}
