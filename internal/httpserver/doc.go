// Package httpserver wraps net/http.Server with address validation,
// explicit binding and context-driven graceful shutdown.
package httpserver
