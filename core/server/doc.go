// Package server holds the HTTP server configuration.
//
// While the start command handles the actual server startup, this package
// defines the configuration structure and small helpers around it: the
// listen address, whether API key authentication is active, and which
// dataset profile requests fall back to.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command to wire middleware and routes.
package server
