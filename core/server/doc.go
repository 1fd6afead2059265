// Package server holds the HTTP server configuration.
//
// The serve command builds the Fiber app from this Config: listen port, API
// key, request body limit and the graceful shutdown budget.
package server
