// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the merged server configuration is usable.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Generation.MinDelay < 0 || cfg.Generation.MaxDelay < cfg.Generation.MinDelay {
		return ErrInvalidGenerationConfigs
	}

	if cfg.Server.RequestTimeout <= cfg.Generation.MaxDelay {
		return ErrInvalidGenerationConfigs
	}

	if cfg.Workers.TrendSyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if !cfg.Storage.DB.Disabled && strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Username == "" || cfg.Password == "" {
		return ErrMissingCredentials
	}

	if cfg.Register && cfg.Email == "" {
		return ErrMissingCredentials
	}

	if strings.TrimSpace(cfg.Prompt) == "" {
		return ErrMissingPrompt
	}

	return nil
}
