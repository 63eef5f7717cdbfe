package service

import "errors"

// Outcomes of [AccountService] operations. Transport layers map them with
// errors.Is; anything wrapping ErrInternal is an infrastructure failure whose
// detail must not reach the client.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUsernameTaken = errors.New("username is already taken")
	ErrAuthFailed    = errors.New("invalid username or password")
	ErrNotFound      = errors.New("account not found")
	ErrInternal      = errors.New("internal error")
)

var (
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
