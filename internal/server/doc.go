// Package server runs the note API's HTTP server.
//
// It covers startup, signal handling and graceful shutdown.
package server
