// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"

	"github.com/MKhiriev/resistance-accounts/internal/crypto"
)

// DefaultVersion is reported when neither configuration nor build flags name
// an application version.
const DefaultVersion = "dev"

const (
	defaultPasswordHashCost = crypto.DefaultCost
	defaultLogLevel         = "debug"

	defaultDSN             = "file:players.db?_busy_timeout=5000"
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 4
	defaultConnMaxLifetime = 30 * time.Minute
	defaultQueryTimeout    = 5 * time.Second

	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultAllowedOrigin   = "http://localhost:3000"

	defaultAdapterRequestTimeout = 10 * time.Second
)

// defaultConfig returns the lowest priority configuration source. Every value
// here is overridden by env, flags or the JSON file.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: defaultPasswordHashCost,
			Version:          DefaultVersion,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:             defaultDSN,
				MaxOpenConns:    defaultMaxOpenConns,
				MaxIdleConns:    defaultMaxIdleConns,
				ConnMaxLifetime: defaultConnMaxLifetime,
				QueryTimeout:    defaultQueryTimeout,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			AllowedOrigins:  []string{defaultAllowedOrigin},
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultAdapterRequestTimeout,
		},
	}
}

// inferDriver picks the database/sql driver for dsn.
func inferDriver(dsn string) string {
	lower := strings.ToLower(strings.TrimSpace(dsn))

	switch {
	case strings.HasPrefix(lower, "postgres://"),
		strings.HasPrefix(lower, "postgresql://"),
		strings.Contains(lower, "host=") && strings.Contains(lower, "dbname="):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}
