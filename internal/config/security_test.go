package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "security.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSecurityConfig_FileAbsent(t *testing.T) {
	config, err := LoadSecurityConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8, config.MinPasswordLength())
	assert.Equal(t, "session", config.CookieName())
	assert.Equal(t, 24*time.Hour, config.SessionTTL())
	assert.False(t, config.CookieSecure())
	assert.Contains(t, config.WeakPasswords(), "password")
}

func TestLoadSecurityConfig_FullFile(t *testing.T) {
	path := writeConfig(t, `
security:
  auth:
    min_password_length: 12
    weak_passwords:
      - "password123"
      - "admin1234"
    bcrypt_cost: 12
  session:
    cookie_name: "portfolio_session"
    ttl_hours: 72
    secure: true
`)

	config, err := LoadSecurityConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 12, config.MinPasswordLength())
	assert.Equal(t, []string{"password123", "admin1234"}, config.WeakPasswords())
	assert.Equal(t, 12, config.BcryptCost())
	assert.Equal(t, "portfolio_session", config.CookieName())
	assert.Equal(t, 72*time.Hour, config.SessionTTL())
	assert.True(t, config.CookieSecure())
}

func TestLoadSecurityConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
security:
  auth:
    min_password_length: 10
`)

	config, err := LoadSecurityConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, config.MinPasswordLength())
	// sections the file omits keep their defaults
	assert.Equal(t, "session", config.CookieName())
	assert.Equal(t, 24*time.Hour, config.SessionTTL())
}

func TestLoadSecurityConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "password length below floor",
			content: `
security:
  auth:
    min_password_length: 4
`,
		},
		{
			name: "empty cookie name",
			content: `
security:
  session:
    cookie_name: ""
`,
		},
		{
			name: "non-positive ttl",
			content: `
security:
  session:
    ttl_hours: 0
`,
		},
		{
			name:    "malformed yaml",
			content: "security: [not: a: map",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSecurityConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
