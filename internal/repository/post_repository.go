// Package repository defines the persistence interfaces consumed by the use
// case layer. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"github.com/siawash1991/my-website/internal/domain/entity"
)

// PostRepository provides durable storage for blog posts.
type PostRepository interface {
	// List retrieves all posts ordered ascending by their display date.
	List(ctx context.Context) ([]*entity.Post, error)
	// Get retrieves a post by ID. Returns (nil, nil) if the post is not found.
	Get(ctx context.Context, id string) (*entity.Post, error)
	Create(ctx context.Context, post *entity.Post) error
	// Update overwrites all mutable columns of the given post.
	// Returns false if no row with the post's ID exists.
	Update(ctx context.Context, post *entity.Post) (bool, error)
	// Delete removes a post. Returns true if a row existed and was removed.
	Delete(ctx context.Context, id string) (bool, error)
	// Count returns the total number of posts, used for business metrics.
	Count(ctx context.Context) (int64, error)
}
