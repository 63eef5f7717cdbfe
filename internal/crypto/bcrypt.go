// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt work factor used when none is configured.
	DefaultCost = 7

	// MaxPasswordLength is the longest plaintext, in bytes, bcrypt accepts.
	MaxPasswordLength = 72
)

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int

	// dummyHash is compared against when the stored hash is unusable so that
	// a miss costs the same time as a real comparison.
	dummyHash []byte
}

// NewBcryptHasher constructs a [PasswordHasher] backed by bcrypt with the
// given work factor. A zero cost selects [DefaultCost].
//
// Returns [ErrInvalidCost] if cost is outside bcrypt's supported range.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	filler := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, filler); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}
	dummyHash, err := bcrypt.GenerateFromPassword([]byte(base64.RawStdEncoding.EncodeToString(filler)), cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return &bcryptHasher{
		cost:      cost,
		dummyHash: dummyHash,
	}, nil
}

// Hash implements [PasswordHasher].
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher].
// Candidates longer than MaxPasswordLength never match, since bcrypt would
// only compare their first MaxPasswordLength bytes.
func (h *bcryptHasher) Verify(plaintext, storedHash string) bool {
	if len(plaintext) > MaxPasswordLength {
		_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(plaintext[:MaxPasswordLength]))
		return false
	}
	if _, err := bcrypt.Cost([]byte(storedHash)); err != nil {
		// unusable stored hash: spend the same work and fail
		_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(plaintext))
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
