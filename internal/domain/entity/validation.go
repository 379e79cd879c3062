package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength caps stored link lengths to keep malformed payloads out of the database.
const maxURLLength = 2048

// ValidateRequired checks that a required text field is non-empty.
// Returns a ValidationError naming the field if it is empty.
func ValidateRequired(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// ValidateURL validates the format of an absolute content link.
// It checks that the URL is well-formed, uses an HTTP/HTTPS scheme, and has a
// host. These links are admin-entered and only ever rendered back to clients,
// so validation is purely syntactic.
func ValidateURL(field, rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: field, Message: "URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: field, Message: "invalid URL"}
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: field, Message: "URL must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: field, Message: "URL must have a valid host"}
	}

	return nil
}

// NormalizeOptionalURL validates an optional URL field and normalizes the
// admin form's "cleared" representation: a nil or empty value becomes absent
// (nil), anything else must be a valid absolute URL. An empty string is never
// stored.
func NormalizeOptionalURL(field string, raw *string) (*string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	if err := ValidateURL(field, *raw); err != nil {
		return nil, err
	}
	v := *raw
	return &v, nil
}
