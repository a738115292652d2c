// Package common defines shared constants and sentinel errors used across
// Tastebook client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Backend/transport-level errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
	ErrNotFound     = errors.New("not found")

	// Session-level errors.
	ErrNoSession = errors.New("no active session")

	// Workflow-level errors.
	ErrBusy = errors.New("another request is in flight")
)
