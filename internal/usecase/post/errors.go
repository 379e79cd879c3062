// Package post provides use cases for managing blog posts.
// It implements the business logic for creating, updating, deleting, and
// querying posts, including schema validation and repository interaction.
package post

import "errors"

var (
	// ErrPostNotFound indicates that the requested post does not exist.
	ErrPostNotFound = errors.New("post not found")
)
