package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives and
	// then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done and then shuts down gracefully.
	// It returns early with an error if the listener cannot be opened.
	Run(ctx context.Context) error
}
