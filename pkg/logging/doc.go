// Package logging provides structured logging utilities for confscope components.
//
// The package wraps the standard library slog with suite-wide defaults:
// JSON output on stderr, module/version attributes on every record,
// LOG_LEVEL environment configuration, and source location tracking when
// running at debug level.
//
// Set the default logger early in main:
//
//	logging.SetDefaultStructuredLogger("confscope", version)
//	slog.Info("starting", "host", hostname)
//
// Explicit level override (e.g. from a --log-level flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("confscope", version, "debug")
//
// Supported levels (case-insensitive): debug, info, warn/warning, error.
// Unset or unrecognized values fall back to info.
package logging
