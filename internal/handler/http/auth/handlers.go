package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/handler/http/requestid"
	"github.com/siawash1991/my-website/internal/handler/http/respond"
	authsvc "github.com/siawash1991/my-website/internal/service/auth"
)

// CookieConfig controls how the session cookie is issued.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (c CookieConfig) name() string {
	if c.Name != "" {
		return c.Name
	}
	return DefaultCookieName
}

// credentialsDTO is the request body for register and login.
type credentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userDTO is the public shape of an account. The password hash never leaves
// the server.
type userDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func setSessionCookie(w http.ResponseWriter, cfg CookieConfig, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.name(),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.Secure,
		MaxAge:   int(cfg.TTL.Seconds()),
	})
}

func clearSessionCookie(w http.ResponseWriter, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.name(),
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.Secure,
		MaxAge:   -1,
	})
}

// RegisterHandler creates an account and logs it in immediately.
type RegisterHandler struct {
	Svc    *authsvc.Service
	Cookie CookieConfig
	Logger *slog.Logger
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	user, session, err := h.Svc.Register(r.Context(), in.Username, in.Password)
	if err != nil {
		var ve *entity.ValidationError
		switch {
		case errors.As(err, &ve):
			respond.SafeError(w, http.StatusBadRequest, ve)
		case errors.Is(err, entity.ErrUsernameTaken):
			respond.SafeError(w, http.StatusBadRequest, entity.ErrUsernameTaken)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		RecordAuthRequest("register", "failure")
		return
	}

	h.Logger.Info("account registered",
		slog.String("request_id", requestid.FromContext(r.Context())),
		slog.String("username", user.Username))
	RecordAuthRequest("register", "success")

	setSessionCookie(w, h.Cookie, session.Token)
	respond.JSON(w, http.StatusCreated, userDTO{ID: user.ID, Username: user.Username})
}

// LoginHandler verifies credentials and opens a session.
type LoginHandler struct {
	Svc     *authsvc.Service
	Cookie  CookieConfig
	Limiter *LoginLimiter
	Logger  *slog.Logger
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Limiter != nil && !h.Limiter.Allow(ExtractIP(r)) {
		RecordLoginThrottled()
		respond.SafeError(w, http.StatusTooManyRequests, errors.New("too many login attempts, retry later"))
		return
	}

	var in credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	user, session, err := h.Svc.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCredentials) {
			RecordAuthRequest("login", "failure")
			respond.SafeError(w, http.StatusUnauthorized, errUnauthorized)
			return
		}
		RecordAuthRequest("login", "error")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	h.Logger.Info("login",
		slog.String("request_id", requestid.FromContext(r.Context())),
		slog.String("username", user.Username))
	RecordAuthRequest("login", "success")

	setSessionCookie(w, h.Cookie, session.Token)
	respond.JSON(w, http.StatusOK, userDTO{ID: user.ID, Username: user.Username})
}

// LogoutHandler revokes the session and clears the cookie.
type LogoutHandler struct {
	Svc    *authsvc.Service
	Cookie CookieConfig
	Logger *slog.Logger
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := ""
	if c, err := r.Cookie(h.Cookie.name()); err == nil {
		token = c.Value
	}

	if err := h.Svc.Logout(r.Context(), token); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	clearSessionCookie(w, h.Cookie)
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler returns the authenticated account. It must run behind the Gate.
type MeHandler struct{}

func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		respond.SafeError(w, http.StatusUnauthorized, errUnauthorized)
		return
	}
	respond.JSON(w, http.StatusOK, userDTO{ID: user.ID, Username: user.Username})
}
