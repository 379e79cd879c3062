package postgres

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB the repositories need. It is also
// satisfied by circuitbreaker.DBCircuitBreaker, so the wiring decides
// whether queries go through a breaker.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
