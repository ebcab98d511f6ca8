// Package logger builds the zap logger used by the exporter and its commands.
//
// Level "debug" selects zap's development preset; any other level uses the
// production preset at that level. An unknown level is an error.
//
// # Request Correlation
//
// WithRayID reads the ray id the rayid middleware stored on a Fiber context
// and attaches it to the returned logger, so every line written while
// handling a captured event can be traced back to one request.
//
// # Configuration
//
// Config is loaded from the "log" section (LOG_LEVEL, LOG_FORMAT):
//   - Level: debug, info, warn, error
//   - Format: json (default) or console (colored levels, no stack traces)
//
// # Usage
//
//	log, err := logger.New(&logger.Config{Level: "info", Format: "console"})
//	if err != nil {
//		return err
//	}
//	log.Info("Profile export configured")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Warn("Event rejected", zap.Error(err))
package logger
