// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// the constraints the server relies on at startup.
func (cfg *StructuredConfig) validate() error {
	if cost := cfg.App.PasswordHashCost; cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d out of [%d, %d]",
			ErrInvalidAppConfigs, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if db.Driver != DriverPostgres && db.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}
	if db.MaxOpenConns < 0 || db.MaxIdleConns < 0 || db.ConnMaxLifetime < 0 || db.QueryTimeout < 0 {
		return fmt.Errorf("%w: negative pool settings", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
