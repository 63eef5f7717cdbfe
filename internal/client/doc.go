// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the one-shot command line client of the account
// server: it parses a command, calls the server through an adapter and
// prints the result as JSON.
package client
