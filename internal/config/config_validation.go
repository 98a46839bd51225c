package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (c *StructuredConfig) validate() error {
	if c.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if c.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
