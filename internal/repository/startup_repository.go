package repository

import (
	"context"

	"github.com/siawash1991/my-website/internal/domain/entity"
)

// StartupRepository provides durable storage for startup concepts.
type StartupRepository interface {
	// List retrieves all startups ordered ascending by creation time.
	List(ctx context.Context) ([]*entity.Startup, error)
	// Get retrieves a startup by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id string) (*entity.Startup, error)
	Create(ctx context.Context, startup *entity.Startup) error
	// Update overwrites all mutable columns. Returns false if the row is missing.
	Update(ctx context.Context, startup *entity.Startup) (bool, error)
	// Delete removes a startup. Returns true if a row existed and was removed.
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
