package client

import "errors"

var (
	ErrUsage          = errors.New("usage: client [flags] register|login <username> <password> | profile <username> | version")
	ErrUnknownCommand = errors.New("unknown command")
)
