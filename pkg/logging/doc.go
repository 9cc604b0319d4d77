// Package logging provides structured logging utilities for calculator registry components.
//
// # Overview
//
// This package wraps the standard library slog package with defaults and
// conventions for consistent logging across the registry, counter and CLI
// packages. It supports environment-based log level configuration, module and
// version context injection, and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("calcreg", "v1.0.0")
//	    slog.Info("registering calculators", "count", n)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("calcreg", "v1.0.0", "debug")
//	logger.Info("calculator created", "name", name)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug calcreg list
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "counters published",
//	    "module": "calcreg",
//	    "version": "v1.0.0",
//	    "counters": 3
//	}
package logging
