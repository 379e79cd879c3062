// Package auth handles account registration and session-based authentication.
// Sessions are opaque random tokens held server-side, so logout and expiry
// revoke access immediately.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/repository"
)

// ErrInvalidCredentials is returned for unknown usernames and wrong
// passwords alike, so responses do not leak which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultSessionTTL is how long a login stays valid unless configured otherwise.
const DefaultSessionTTL = 24 * time.Hour

// Service provides registration, login, logout and session validation.
type Service struct {
	Users    repository.UserRepository
	Sessions repository.SessionRepository

	// password policy
	MinPasswordLength int
	WeakPasswords     []string

	SessionTTL time.Duration
	BcryptCost int
}

func (s *Service) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

func (s *Service) bcryptCost() int {
	if s.BcryptCost >= bcrypt.MinCost && s.BcryptCost <= bcrypt.MaxCost {
		return s.BcryptCost
	}
	return bcrypt.DefaultCost
}

// Register creates a new account and opens a session for it.
// Returns a ValidationError for policy violations and ErrUsernameTaken when
// the username already exists.
func (s *Service) Register(ctx context.Context, username, password string) (*entity.User, *entity.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, nil, &entity.ValidationError{Field: "username", Message: "is required"}
	}
	if err := s.checkPasswordPolicy(password); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost())
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrUsernameTaken) {
			return nil, nil, entity.ErrUsernameTaken
		}
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	session, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login verifies the credentials and opens a new session.
// Returns ErrInvalidCredentials when the username or password is wrong.
func (s *Service) Login(ctx context.Context, username, password string) (*entity.User, *entity.Session, error) {
	user, err := s.Users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		// burn a comparison anyway so the timing matches the found path
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"), []byte(password))
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Logout revokes the session. Revoking an unknown token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if _, err := s.Sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Authenticate resolves a session token to its user.
// Expired sessions are rejected even before the pruning job removes them.
// Returns ErrInvalidCredentials for unknown, expired or empty tokens.
func (s *Service) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrInvalidCredentials
	}
	session, err := s.Sessions.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil || session.Expired(time.Now().UTC()) {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// PruneSessions removes expired sessions and returns how many were dropped.
func (s *Service) PruneSessions(ctx context.Context) (int64, error) {
	n, err := s.Sessions.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	return n, nil
}

func (s *Service) openSession(ctx context.Context, userID string) (*entity.Session, error) {
	token, err := newSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	now := time.Now().UTC()
	session := &entity.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL()),
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (s *Service) checkPasswordPolicy(password string) error {
	minLen := s.MinPasswordLength
	if minLen <= 0 {
		minLen = 8
	}
	if len(password) < minLen {
		return &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", minLen),
		}
	}
	lowered := strings.ToLower(password)
	for _, weak := range s.WeakPasswords {
		if lowered == strings.ToLower(weak) {
			return &entity.ValidationError{Field: "password", Message: "is too common"}
		}
	}
	return nil
}

// newSessionToken returns 256 bits of randomness in hex.
func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
