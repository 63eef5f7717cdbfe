package crypto

import "errors"

var (
	// ErrPasswordTooLong is returned by Hash when the plaintext is longer
	// than bcrypt can process without truncation.
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrInvalidCost is returned by NewBcryptHasher for a cost factor outside
	// of [bcrypt.MinCost, bcrypt.MaxCost].
	ErrInvalidCost = errors.New("invalid bcrypt cost")

	// ErrHashingFailed wraps unexpected failures of the hashing backend
	// (for example, an exhausted random source).
	ErrHashingFailed = errors.New("password hashing failed")
)
