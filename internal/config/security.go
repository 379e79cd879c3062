// Package config loads the YAML configuration files shipped alongside the
// binary. Connection strings and ports stay in environment variables; the
// YAML carries policy that operators tune less often.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SecurityConfig represents the security policy: password rules for account
// registration and the session cookie settings.
type SecurityConfig struct {
	Security struct {
		Auth struct {
			MinPasswordLength int      `yaml:"min_password_length"`
			WeakPasswords     []string `yaml:"weak_passwords"`
			BcryptCost        int      `yaml:"bcrypt_cost"`
		} `yaml:"auth"`
		Session struct {
			CookieName string `yaml:"cookie_name"`
			TTLHours   int    `yaml:"ttl_hours"`
			Secure     bool   `yaml:"secure"`
		} `yaml:"session"`
	} `yaml:"security"`
}

// DefaultSecurityConfig returns the policy used when no config file is
// present: 8-character minimum, a small built-in weak list, default bcrypt
// cost and a 24h lax cookie.
func DefaultSecurityConfig() *SecurityConfig {
	var c SecurityConfig
	c.Security.Auth.MinPasswordLength = 8
	c.Security.Auth.WeakPasswords = []string{
		"password", "12345678", "qwerty123", "letmein1",
	}
	c.Security.Session.CookieName = "session"
	c.Security.Session.TTLHours = 24
	return &c
}

// LoadSecurityConfig loads the security configuration from a YAML file.
// A missing file is not an error; the defaults apply. The path comes from a
// trusted source (CLI arg or hardcoded default), never from request input.
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by trusted source, not user input
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSecurityConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultSecurityConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.Auth.MinPasswordLength < 8 {
		return fmt.Errorf("min_password_length must be at least 8")
	}
	if config.Security.Session.CookieName == "" {
		return fmt.Errorf("session cookie_name is required")
	}
	if config.Security.Session.TTLHours <= 0 {
		return fmt.Errorf("session ttl_hours must be positive")
	}
	return nil
}

// MinPasswordLength returns the minimum password length requirement.
func (c *SecurityConfig) MinPasswordLength() int {
	return c.Security.Auth.MinPasswordLength
}

// WeakPasswords returns the rejected-password list.
func (c *SecurityConfig) WeakPasswords() []string {
	return c.Security.Auth.WeakPasswords
}

// BcryptCost returns the configured bcrypt cost, or zero to use the
// library default.
func (c *SecurityConfig) BcryptCost() int {
	return c.Security.Auth.BcryptCost
}

// CookieName returns the session cookie name.
func (c *SecurityConfig) CookieName() string {
	return c.Security.Session.CookieName
}

// SessionTTL returns the session lifetime as a duration.
func (c *SecurityConfig) SessionTTL() time.Duration {
	return time.Duration(c.Security.Session.TTLHours) * time.Hour
}

// CookieSecure reports whether the session cookie should be HTTPS-only.
func (c *SecurityConfig) CookieSecure() bool {
	return c.Security.Session.Secure
}
