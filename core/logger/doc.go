// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Logs are always written to stderr; stdout is
// reserved for the human-readable outcome of a probe.
//
// # Run IDs
//
// Every probe invocation is tagged with a run_id (a random UUID) through
// WithRunID, so all log lines of a single run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log, runID := logger.WithRunID(log)
//	log.Info("Probe started")
package logger
