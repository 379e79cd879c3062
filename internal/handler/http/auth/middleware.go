package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/siawash1991/my-website/internal/handler/http/requestid"
	"github.com/siawash1991/my-website/internal/handler/http/respond"
	authsvc "github.com/siawash1991/my-website/internal/service/auth"
)

// DefaultCookieName is the session cookie used unless configured otherwise.
const DefaultCookieName = "session"

var errUnauthorized = errors.New("unauthorized")

// Gate rejects requests that do not carry a valid session cookie.
// It runs before any body decoding or validation, so an anonymous write
// never touches the persistence layer.
type Gate struct {
	Auth       *authsvc.Service
	CookieName string
	Logger     *slog.Logger
}

func (g *Gate) cookieName() string {
	if g.CookieName != "" {
		return g.CookieName
	}
	return DefaultCookieName
}

// Require wraps a handler so it only runs for authenticated requests.
// Anonymous or expired sessions get 401 with a JSON error body.
func (g *Gate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		token := ""
		if c, err := r.Cookie(g.cookieName()); err == nil {
			token = c.Value
		}

		user, err := g.Auth.Authenticate(r.Context(), token)
		RecordAuthCheckDuration(time.Since(start).Seconds())
		if err != nil {
			if !errors.Is(err, authsvc.ErrInvalidCredentials) {
				// store failure, not a bad credential
				if g.Logger != nil {
					g.Logger.Error("session lookup failed",
						slog.String("request_id", requestid.FromContext(r.Context())),
						slog.Any("error", err))
				}
				RecordAuthRequest("gate", "error")
				respond.SafeError(w, http.StatusInternalServerError, err)
				return
			}
			RecordAuthRequest("gate", "failure")
			respond.SafeError(w, http.StatusUnauthorized, errUnauthorized)
			return
		}

		RecordAuthRequest("gate", "success")
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}
