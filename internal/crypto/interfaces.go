// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto contains the password hashing used to store and check
// player credentials. It has no knowledge of the network or the database.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against stored hashes.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext. Every call uses a fresh random
	// salt, so hashing the same plaintext twice yields different strings.
	// Returns [ErrPasswordTooLong] if plaintext exceeds [MaxPasswordLength]
	// bytes.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches storedHash. The comparison is
	// constant-time. Verify never fails: an empty or malformed storedHash
	// yields false.
	Verify(plaintext, storedHash string) bool
}
