package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/repository"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

type UserRepo struct {
	db Querier
}

func NewUserRepo(db Querier) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	const query = `SELECT id, username, password FROM users WHERE id = $1`
	var u entity.User
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return &u, nil
}

func (repo *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `SELECT id, username, password FROM users WHERE username = $1`
	var u entity.User
	err := repo.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByUsername: %w", err)
	}
	return &u, nil
}

func (repo *UserRepo) Create(ctx context.Context, u *entity.User) error {
	const query = `INSERT INTO users (id, username, password) VALUES ($1, $2, $3)`
	_, err := repo.db.ExecContext(ctx, query, u.ID, u.Username, u.PasswordHash)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("Create: %w", entity.ErrUsernameTaken)
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
