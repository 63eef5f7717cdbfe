// Package server runs the HTTP transport of the account server: startup,
// signal handling and graceful shutdown bounded by the configured timeout.
package server
