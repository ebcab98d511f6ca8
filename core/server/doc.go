// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package only defines the
// settings it reads: the listen port, the API key, the request body limit for
// captured events and the graceful shutdown deadline, during which queued
// profile writes are flushed.
package server
