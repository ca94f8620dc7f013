// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

var supportedDrivers = []string{DriverPostgres, DriverMySQL, DriverSQLite}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if !slices.Contains(supportedDrivers, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		return fmt.Errorf("%w: negative pool size", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return ErrInvalidServerConfigs
	}

	if strings.TrimSpace(cfg.App.IdentityHeader) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
