package repository

import (
	"context"
	"time"

	"github.com/siawash1991/my-website/internal/domain/entity"
)

// SessionRepository provides the server-held session store backing the
// authentication gate. Expiry is enforced by readers; DeleteExpired exists so
// a maintenance job can reclaim stale rows.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// Get retrieves a session by token. Returns (nil, nil) if not found.
	// Callers must still check the session's expiry.
	Get(ctx context.Context, token string) (*entity.Session, error)
	// Delete revokes a session. Returns true if a row existed and was removed.
	Delete(ctx context.Context, token string) (bool, error)
	// DeleteExpired removes all sessions expired at the given time and
	// returns the number of rows reclaimed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
