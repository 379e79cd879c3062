// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent, all we can do is log
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// safeErrors are message fragments that mark an error as safe to echo back
// to the client. Everything else is replaced with a generic message.
var safeErrors = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"unauthorized",
	"must be",
	"cannot be",
	"too long",
	"too short",
	"too common",
}

// SafeError sanitizes error messages before returning them to clients.
// Validation-style errors pass through as-is; anything that smells internal
// (including every 5xx) is logged with secrets masked and replaced with
// "internal server error".
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeErrors {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
