// Package logging provides structured logging for predator-rgb.
//
// This package wraps a global zap logger. It is silent by default so that the
// curated console output (summary, preview, hex dump) is not interleaved with
// log lines. Set PREDATOR_LOG_LEVEL (or pass --log-level) to "debug", "info",
// "warn" or "error" to enable logging on stderr.
//
// # Log Levels
//
//   - Debug: every payload with a hex dump
//   - Info: device opens, profile saves and loads
//   - Warn: stale profile files that could not be removed
//   - Error: failures reported just before exit
//
// # Usage
//
//	if err := logging.Initialize(""); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogPayload("/dev/acer-gkbbl-0", payload, false)
package logging
