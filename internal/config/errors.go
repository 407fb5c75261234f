package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidPipelineConfigs indicates invalid pipeline policy settings
	// (for example, a non-positive rate limit).
	ErrInvalidPipelineConfigs = errors.New("invalid pipeline configuration")
	// ErrInvalidAppConfigs indicates invalid token codec settings
	// (for example, a non-positive token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
