// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// account server handlers and the client.
//
// All Msg* constants are human-readable message strings written into the
// "msg" field of HTTP response bodies. Keeping them in one place keeps the
// wording identical for the web front-end and the CLI client.
package app

const (
	// MsgAccountCreated is returned with 201 after a successful registration.
	MsgAccountCreated = "Account created successfully."

	// MsgUsernameTaken is returned with 409 when the requested username
	// already belongs to another account.
	MsgUsernameTaken = "Username is already taken."

	// MsgInvalidCredentials is returned with 401 for both an unknown username
	// and a wrong password.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgMissingJSON is returned with 400 when a POST body is not declared
	// as application/json or cannot be decoded.
	MsgMissingJSON = "Missing JSON in request"

	// MsgMissingCredentials is returned with 400 when username or password is
	// absent or empty.
	MsgMissingCredentials = "Missing username or password"

	// MsgMissingUsernameParam is returned with 400 when the profile lookup has
	// no username query parameter.
	MsgMissingUsernameParam = "Missing username query parameter"

	// MsgAccountNotFoundFmt is formatted with the requested username and
	// returned with 404.
	MsgAccountNotFoundFmt = "Account not found for username: %s"

	// MsgPasswordTooLong is returned with 400 when the password exceeds the
	// hasher's input limit.
	MsgPasswordTooLong = "Password is too long"

	// MsgInternalServerError is returned with 500 when an unexpected
	// server-side failure occurs. No backend detail is ever included.
	MsgInternalServerError = "Internal server error"
)
