// Package startup provides use cases for managing startup profiles.
package startup

import "errors"

var (
	// ErrStartupNotFound indicates that the requested profile does not exist.
	ErrStartupNotFound = errors.New("startup not found")
)
