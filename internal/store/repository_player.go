// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/resistance-accounts/internal/logger"
	"github.com/MKhiriev/resistance-accounts/models"
)

// playerRepository is the database/sql implementation of [PlayerRepository]
// over the "players" table. It works with both PostgreSQL and SQLite; the
// dialect differences live in [DB].
type playerRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPlayerRepository constructs a [PlayerRepository] backed by db.
func NewPlayerRepository(db *DB, logger *logger.Logger) PlayerRepository {
	logger.Debug().Msg("creating player repository")
	return &playerRepository{
		db:     db,
		logger: logger,
	}
}

// Exists reports whether name is taken.
func (r *playerRepository) Exists(ctx context.Context, name string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsQuery(r.db.builder, name)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.Exists").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	err = r.db.run(ctx, func(ctx context.Context, q querier) error {
		var one int
		scanErr := q.QueryRowContext(ctx, query, args...).Scan(&one)
		switch {
		case errors.Is(scanErr, sql.ErrNoRows):
			return nil
		case scanErr != nil:
			log.Err(scanErr).
				Str("func", "*playerRepository.Exists").
				Str("player_name", name).
				Str("classification", r.db.classify(ctx, scanErr, "*playerRepository.Exists").String()).
				Msg("failed to check player existence")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
		}

		exists = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Insert creates a player with zeroed statistics and returns its id.
//
// Error handling:
//   - unique violation (Postgres 23505, SQLite constraint unique) → [ErrDuplicateName].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *playerRepository) Insert(ctx context.Context, name, passwordHash string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPlayerQuery(r.db.builder, name, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.Insert").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.db.run(ctx, func(ctx context.Context, q querier) error {
		queryErr := q.QueryRowContext(ctx, query, args...).Scan(&id)
		if queryErr == nil {
			return nil
		}

		if r.db.classify(ctx, queryErr, "*playerRepository.Insert") == UniqueViolation {
			log.Info().
				Str("func", "*playerRepository.Insert").
				Str("player_name", name).
				Msg("player name rejected by unique constraint")
			return ErrDuplicateName
		}

		log.Err(queryErr).
			Str("func", "*playerRepository.Insert").
			Str("player_name", name).
			Msg("failed to insert player")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	})
	if err != nil {
		return 0, err
	}

	log.Debug().
		Str("func", "*playerRepository.Insert").
		Int64("player_id", id).
		Msg("player inserted")

	return id, nil
}

// FindByName returns the credentials record of name.
func (r *playerRepository) FindByName(ctx context.Context, name string) (models.Player, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindByNameQuery(r.db.builder, name)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.FindByName").Msg("failed to build query")
		return models.Player{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var player models.Player
	err = r.db.run(ctx, func(ctx context.Context, q querier) error {
		scanErr := q.QueryRowContext(ctx, query, args...).Scan(&player.ID, &player.Name, &player.PasswordHash)
		switch {
		case errors.Is(scanErr, sql.ErrNoRows):
			return ErrPlayerNotFound
		case scanErr != nil:
			log.Err(scanErr).
				Str("func", "*playerRepository.FindByName").
				Str("player_name", name).
				Str("classification", r.db.classify(ctx, scanErr, "*playerRepository.FindByName").String()).
				Msg("failed to find player")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		return nil
	})
	if err != nil {
		return models.Player{}, err
	}

	return player, nil
}

// FindProfileByName returns id and statistics of name through the
// [profileColumns] projection.
func (r *playerRepository) FindProfileByName(ctx context.Context, name string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindProfileQuery(r.db.builder, name)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.FindProfileByName").Msg("failed to build query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.Profile
	targets := append([]any{&profile.ID}, statsScanTargets(&profile.PlayerStats)...)

	err = r.db.run(ctx, func(ctx context.Context, q querier) error {
		scanErr := q.QueryRowContext(ctx, query, args...).Scan(targets...)
		switch {
		case errors.Is(scanErr, sql.ErrNoRows):
			return ErrPlayerNotFound
		case scanErr != nil:
			log.Err(scanErr).
				Str("func", "*playerRepository.FindProfileByName").
				Str("player_name", name).
				Str("classification", r.db.classify(ctx, scanErr, "*playerRepository.FindProfileByName").String()).
				Msg("failed to find player profile")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		return nil
	})
	if err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}
