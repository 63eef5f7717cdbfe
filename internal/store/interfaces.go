// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/resistance-accounts/models"
)

// PlayerRepository is the persistence contract for the players table.
//
// Every method runs in its own transaction unless ctx already carries one
// opened by [Transactor.WithinTx], in which case it joins that transaction.
type PlayerRepository interface {
	// Exists reports whether a player with exactly this name is stored.
	Exists(ctx context.Context, name string) (bool, error)

	// Insert stores a new player with all statistics at zero and returns the
	// assigned id. A name collision yields [ErrDuplicateName].
	Insert(ctx context.Context, name, passwordHash string) (int64, error)

	// FindByName returns the credentials record (id, name, password hash).
	// A miss yields [ErrPlayerNotFound].
	FindByName(ctx context.Context, name string) (models.Player, error)

	// FindProfileByName returns the public projection of a player: id and
	// the statistics counters, never the name or the hash.
	// A miss yields [ErrPlayerNotFound].
	FindProfileByName(ctx context.Context, name string) (models.Profile, error)
}

// Transactor scopes a unit of work to one database transaction.
type Transactor interface {
	// WithinTx begins a transaction, runs fn with a context carrying it and
	// commits when fn returns nil. The transaction is rolled back on every
	// other exit path, panics included.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ErrorClassificator maps a backend-specific driver error to an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
