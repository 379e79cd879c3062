package repository

import (
	"context"

	"github.com/siawash1991/my-website/internal/domain/entity"
)

// PodcastRepository provides durable storage for podcast episodes.
type PodcastRepository interface {
	// List retrieves all podcasts ordered ascending by their display date.
	List(ctx context.Context) ([]*entity.Podcast, error)
	// Get retrieves a podcast by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id string) (*entity.Podcast, error)
	Create(ctx context.Context, podcast *entity.Podcast) error
	// Update overwrites all mutable columns. Returns false if the row is missing.
	Update(ctx context.Context, podcast *entity.Podcast) (bool, error)
	// Delete removes a podcast. Returns true if a row existed and was removed.
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
