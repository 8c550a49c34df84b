// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the listen
// address, the API key and the fiber settings derived from them.
package server
