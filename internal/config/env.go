// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the `env` and
// `envPrefix` tags, e.g. SERVER_ADDRESS or STORAGE_DB_DISABLED.
// Unset variables leave fields zero so later sources and defaults apply.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing env configs: %w", err)
	}

	return nil
}
