package entity

import "time"

// User is an admin account. Accounts are created through registration only;
// the content API never updates or deletes them.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt, never serialized to clients
}

// Session is a server-held login session. The token is the opaque value the
// client presents in its cookie; a session is valid until ExpiresAt or until
// logout deletes it, whichever comes first.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
