// Package auth provides the HTTP layer of the account system: register,
// login, logout and the session gate that protects write endpoints.
package auth

import (
	"context"

	"github.com/siawash1991/my-website/internal/domain/entity"
)

type contextKey string

const userKey contextKey = "auth_user"

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, u *entity.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the authenticated user, or nil when the request
// did not pass the session gate.
func UserFromContext(ctx context.Context) *entity.User {
	if u, ok := ctx.Value(userKey).(*entity.User); ok {
		return u
	}
	return nil
}
