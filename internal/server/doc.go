// Package server manages the HTTP transport lifecycle: startup, listen
// address discovery, and graceful shutdown on termination signals.
package server
