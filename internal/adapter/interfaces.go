// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client of the account server API.
//
// [ServerAdapter] decouples callers from the transport. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for a
// taken username, [ErrUnauthorized] for bad credentials).
package adapter

import (
	"context"

	"github.com/MKhiriev/resistance-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client view of the account server.
type ServerAdapter interface {
	// Register creates an account and returns the server's confirmation
	// message. A taken username yields [ErrConflict].
	Register(ctx context.Context, credentials models.Credentials) (string, error)

	// Login verifies credentials and returns the account identity.
	// Bad credentials yield [ErrUnauthorized].
	Login(ctx context.Context, credentials models.Credentials) (models.AccountInfo, error)

	// GetAccountInfo returns the public statistics of username.
	// An unknown username yields [ErrNotFound].
	GetAccountInfo(ctx context.Context, username string) (models.Profile, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
