// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/resistance-accounts/internal/crypto"
	"github.com/MKhiriev/resistance-accounts/internal/logger"
	"github.com/MKhiriev/resistance-accounts/internal/store"
	"github.com/MKhiriev/resistance-accounts/models"
)

// accountService is the concrete implementation of AccountService.
// It combines a PlayerRepository for persistence, a Transactor for the
// registration unit of work and a PasswordHasher for credentials.
type accountService struct {
	players    store.PlayerRepository
	transactor store.Transactor
	hasher     crypto.PasswordHasher

	logger *logger.Logger
}

// NewAccountService constructs an AccountService. All state is read-only after
// construction, so the service is safe for concurrent use.
func NewAccountService(players store.PlayerRepository, transactor store.Transactor, hasher crypto.PasswordHasher, logger *logger.Logger) AccountService {
	return &accountService{
		players:    players,
		transactor: transactor,
		hasher:     hasher,
		logger:     logger,
	}
}

// Register creates a new account.
//
// Existence check, hashing and insert share one transaction. Two concurrent
// registrations of one name may both pass the existence check; the UNIQUE
// constraint then rejects the second insert with store.ErrDuplicateName,
// which is reported as ErrUsernameTaken like the check itself.
func (s *accountService) Register(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	if !credentials.IsComplete() {
		log.Warn().Str("func", "accountService.Register").Msg("username or password is missing")
		return ErrInvalidInput
	}

	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.players.Exists(ctx, credentials.Username)
		if err != nil {
			return err
		}
		if exists {
			return ErrUsernameTaken
		}

		hash, err := s.hasher.Hash(credentials.Password)
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}

		id, err := s.players.Insert(ctx, credentials.Username, hash)
		if err != nil {
			return err
		}

		log.Info().
			Str("func", "accountService.Register").
			Int64("player_id", id).
			Str("username", credentials.Username).
			Msg("account created")
		return nil
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUsernameTaken), errors.Is(err, store.ErrDuplicateName):
		log.Info().
			Str("func", "accountService.Register").
			Str("username", credentials.Username).
			Bool("lost_race", errors.Is(err, store.ErrDuplicateName)).
			Msg("username is already taken")
		return ErrUsernameTaken
	case errors.Is(err, ErrInvalidInput):
		log.Warn().Err(err).Str("func", "accountService.Register").Msg("password rejected")
		return err
	default:
		log.Err(err).Str("func", "accountService.Register").Str("username", credentials.Username).Msg("registration failed")
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

// Authenticate checks credentials against the stored hash.
//
// An unknown username still pays for one hash comparison, so that unknown
// user and wrong password are indistinguishable from outside. The log keeps
// the distinction.
func (s *accountService) Authenticate(ctx context.Context, credentials models.Credentials) (models.AccountInfo, error) {
	log := logger.FromContext(ctx)

	if !credentials.IsComplete() {
		log.Warn().Str("func", "accountService.Authenticate").Msg("username or password is missing")
		return models.AccountInfo{}, ErrInvalidInput
	}

	player, err := s.players.FindByName(ctx, credentials.Username)
	if errors.Is(err, store.ErrPlayerNotFound) {
		s.hasher.Verify(credentials.Password, "")
		log.Info().
			Str("func", "accountService.Authenticate").
			Str("username", credentials.Username).
			Str("reason", "unknown user").
			Msg("authentication failed")
		return models.AccountInfo{}, ErrAuthFailed
	}
	if err != nil {
		log.Err(err).
			Str("func", "accountService.Authenticate").
			Str("username", credentials.Username).
			Msg("player lookup failed")
		return models.AccountInfo{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if !s.hasher.Verify(credentials.Password, player.PasswordHash) {
		log.Info().
			Str("func", "accountService.Authenticate").
			Str("username", credentials.Username).
			Str("reason", "wrong password").
			Msg("authentication failed")
		return models.AccountInfo{}, ErrAuthFailed
	}

	return models.AccountInfo{ID: player.ID, Username: player.Name}, nil
}

// GetProfile returns the public statistics of username.
func (s *accountService) GetProfile(ctx context.Context, username string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		log.Warn().Str("func", "accountService.GetProfile").Msg("username is missing")
		return models.Profile{}, ErrInvalidInput
	}

	profile, err := s.players.FindProfileByName(ctx, username)
	if errors.Is(err, store.ErrPlayerNotFound) {
		log.Info().Str("func", "accountService.GetProfile").Str("username", username).Msg("account not found")
		return models.Profile{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "accountService.GetProfile").Str("username", username).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return profile, nil
}
