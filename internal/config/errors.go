package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrNoTokenSignKey indicates that no JWT signing key was provided by
	// any configuration source. The service cannot issue sessions without it.
	ErrNoTokenSignKey = errors.New("no token sign key configured")

	// ErrInvalidTokenDuration indicates a zero or negative session token
	// lifetime.
	ErrInvalidTokenDuration = errors.New("invalid token duration")

	// ErrNoStorageConfigured indicates that neither a database DSN nor a
	// snapshot file path was provided.
	ErrNoStorageConfigured = errors.New("no storage backend configured")
)
