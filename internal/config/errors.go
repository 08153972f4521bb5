package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing token sign key or issuer, or a
	// non-positive token duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN with storage enabled.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidGenerationConfigs indicates an inverted delay range or a
	// request timeout that does not cover the longest delay.
	ErrInvalidGenerationConfigs = errors.New("invalid generation configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive sync interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAdapterConfigs indicates invalid client transport settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrMissingCredentials indicates the client has no username or password
	// (or no email when registering).
	ErrMissingCredentials = errors.New("missing client credentials")
	// ErrMissingPrompt indicates no prompt was given to the client.
	ErrMissingPrompt = errors.New("missing prompt")
)
