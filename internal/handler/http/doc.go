// Package http implements the REST transport of the note server.
//
// It exposes route wiring, request handlers, and middleware used by the API.
// Cross-cutting concerns such as authentication, request tracing, access
// logging and response compression are handled in this package before
// requests are delegated to the service layer.
package http
