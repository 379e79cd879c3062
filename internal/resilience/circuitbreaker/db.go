package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// DBCircuitBreaker wraps a *sql.DB so that repository queries stop hammering
// a database that is already failing. It satisfies the repositories' Querier
// interface.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// DBConfig trips the breaker once every request in a one-minute window has
// failed, with at least 5 requests observed, and probes again after 30
// seconds. Counts reset each interval, so intermittent successes keep the
// breaker closed.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
}

func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return &DBCircuitBreaker{cb: New(DBConfig()), db: db}
}

func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{cb: New(cfg), db: db}
}

func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// QueryRowContext bypasses the breaker: sql.Row defers its error to Scan, so
// there is nothing to count here.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return dcb.db.QueryRowContext(ctx, query, args...)
}

// State returns the current state of the circuit breaker.
func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

// IsOpen reports whether the circuit breaker is in the open state.
func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.IsOpen()
}

// DB exposes the raw connection for callers that must not go through the
// breaker, such as health checks.
func (dcb *DBCircuitBreaker) DB() *sql.DB {
	return dcb.db
}
