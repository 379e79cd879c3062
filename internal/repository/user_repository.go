package repository

import (
	"context"

	"github.com/siawash1991/my-website/internal/domain/entity"
)

// UserRepository provides durable storage for admin accounts.
// The content API only ever creates and reads users; there is no update or
// delete path.
type UserRepository interface {
	// GetByID retrieves a user by ID. Returns (nil, nil) if not found.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByUsername retrieves a user by username. Returns (nil, nil) if not found.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Create stores a new user. Returns entity.ErrUsernameTaken (wrapped) when
	// the username violates the uniqueness constraint.
	Create(ctx context.Context, user *entity.User) error
}
