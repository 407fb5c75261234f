package config

// validate checks that the final merged [StructuredConfig] satisfies the
// service invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive sentinel error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Pipeline.RPS <= 0 || cfg.Pipeline.Burst <= 0 {
		return ErrInvalidPipelineConfigs
	}

	if cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
