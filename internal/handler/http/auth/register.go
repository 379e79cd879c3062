package auth

import (
	"log/slog"
	"net/http"

	authsvc "github.com/siawash1991/my-website/internal/service/auth"
)

// Register wires the account endpoints onto the mux. The register and login
// endpoints are necessarily public; GET /api/user runs behind the gate.
func Register(mux *http.ServeMux, svc *authsvc.Service, gate *Gate, cookie CookieConfig, limiter *LoginLimiter, logger *slog.Logger) {
	mux.Handle("POST /api/register", &RegisterHandler{Svc: svc, Cookie: cookie, Logger: logger})
	mux.Handle("POST /api/login", &LoginHandler{Svc: svc, Cookie: cookie, Limiter: limiter, Logger: logger})
	mux.Handle("POST /api/logout", &LogoutHandler{Svc: svc, Cookie: cookie, Logger: logger})
	mux.Handle("GET /api/user", gate.Require(&MeHandler{}))
}
