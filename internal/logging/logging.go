package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

var (
	// Logger is the global structured logger
	Logger *slog.Logger

	// Verbose enables debug logging
	Verbose bool
)

func init() {
	Logger = slog.New(textHandler(os.Stderr, slog.LevelWarn))
}

// Setup configures the logger. Without verbose only warnings and errors
// are emitted so that table output stays clean.
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	Verbose = verbose

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if w == nil {
		w = os.Stderr
	}

	if jsonOutput {
		Logger = slog.New(slog.NewJSONHandler(w, opts))
	} else {
		Logger = slog.New(textHandler(w, level))
	}
}

// textHandler is the human-readable handler: charm's logger, which renders
// key=value pairs after a coloured level when w is a terminal.
func textHandler(w io.Writer, level slog.Level) slog.Handler {
	return log.NewWithOptions(w, log.Options{
		Level:           log.Level(level),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// With returns a logger with additional attributes
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}
