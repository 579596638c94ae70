// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] can start a
// relay: it needs an address to listen on, a session store, a positive
// rehydration concurrency and, when user tokens are enabled, an issuer.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Providers.RequestTimeout <= 0 {
		return ErrInvalidProviderConfigs
	}
	if cfg.Workers.RehydrationConcurrency < 1 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.App.TokenSignKey != "" && cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.UserID == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.App.TokenSignKey != "" && (cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0) {
		return ErrInvalidAppConfigs
	}

	return nil
}
