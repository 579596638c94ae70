package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing relay address, timeout or user ID).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty session store DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidProviderConfigs indicates a non-positive backend timeout.
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidAppConfigs indicates token settings that cannot be used
	// (for example, a sign key without an issuer).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid startup worker settings
	// (for example, zero rehydration concurrency).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
