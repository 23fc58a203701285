package services

import "errors"

// Sentinel errors for explicit error handling. Handlers map these onto the
// HTTP error taxonomy with errors.Is() instead of string matching.

var (
	// ErrAdminExists indicates registration was attempted after an admin
	// account already exists
	ErrAdminExists = errors.New("admin already registered")

	// ErrInvalidCredentials indicates authentication failed
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRecordNotFound indicates the requested gift-card record does not exist
	ErrRecordNotFound = errors.New("record not found")

	// ErrSessionNotFound indicates the session does not exist or has expired
	ErrSessionNotFound = errors.New("session not found")
)
