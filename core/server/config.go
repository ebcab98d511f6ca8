package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of a captured event posted to the server.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"16"`
	// ShutdownTimeoutSeconds bounds how long pending exports are flushed on shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10"`
}

const (
	defaultBodyLimitMB     = 16
	defaultShutdownTimeout = 10 * time.Second
)

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return defaultBodyLimitMB << 20
	}
	return c.BodyLimitMB << 20
}

// ShutdownTimeout returns the graceful shutdown deadline.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return defaultShutdownTimeout
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
