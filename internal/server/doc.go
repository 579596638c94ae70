// Package server runs the relay's HTTP transport: startup, signal handling
// and graceful shutdown.
package server
