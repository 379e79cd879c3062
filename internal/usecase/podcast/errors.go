// Package podcast provides use cases for managing podcast episodes.
package podcast

import "errors"

var (
	// ErrPodcastNotFound indicates that the requested episode does not exist.
	ErrPodcastNotFound = errors.New("podcast not found")
)
