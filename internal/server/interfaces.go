package server

// Server defines the lifecycle contract of the note API server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT and then
	// shuts down gracefully. A failure to listen is returned immediately.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight
	// requests, bounded by a fixed timeout.
	Shutdown()
}
