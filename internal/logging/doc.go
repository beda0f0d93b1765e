// Package logging provides logging utilities for vlsm-ctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("parsed parent network", "network", parent, "normalized", true)
//	logging.Warn("unknown config key", "key", key)
//
// Without --verbose only warnings and errors reach stderr. Text logs are
// rendered by github.com/charmbracelet/log acting as the slog handler;
// --json switches to slog's JSON handler.
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("No plans found in %s", dir)
//	logging.UserSuccess("Plan %s saved", name)
//	logging.UserWarning("Host bits cleared: %s is %s", input, parent)
//	logging.UserError("%s: %s", kind, message)
//
// Output destinations:
//   - UserInfo, UserSuccess: Stdout (os.Stdout by default)
//   - UserWarning, UserError: Stderr (os.Stderr by default)
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
