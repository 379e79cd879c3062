package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/repository"
)

type SessionRepo struct {
	db Querier
}

func NewSessionRepo(db Querier) repository.SessionRepository {
	return &SessionRepo{db: db}
}

func (repo *SessionRepo) Create(ctx context.Context, s *entity.Session) error {
	const query = `
INSERT INTO sessions (token, user_id, created_at, expires_at)
VALUES ($1, $2, $3, $4)`
	_, err := repo.db.ExecContext(ctx, query, s.Token, s.UserID, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *SessionRepo) Get(ctx context.Context, token string) (*entity.Session, error) {
	const query = `
SELECT token, user_id, created_at, expires_at
FROM sessions
WHERE token = $1`
	var s entity.Session
	err := repo.db.QueryRowContext(ctx, query, token).Scan(
		&s.Token, &s.UserID, &s.CreatedAt, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &s, nil
}

func (repo *SessionRepo) Delete(ctx context.Context, token string) (bool, error) {
	const query = `DELETE FROM sessions WHERE token = $1`
	res, err := repo.db.ExecContext(ctx, query, token)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (repo *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM sessions WHERE expires_at <= $1`
	res, err := repo.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("DeleteExpired: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteExpired: RowsAffected: %w", err)
	}
	return n, nil
}
