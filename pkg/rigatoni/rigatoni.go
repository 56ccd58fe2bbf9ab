package rigatoni

import (
	"log/slog"

	"github.com/BrandonKowalski/rigatoni/pkg/rigatoni/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Call before the first engine or
// registry operation to take effect; without a path the logger writes to
// stdout only.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the package logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the package logger.
// The default is warn; set debug to trace refusals and registrations.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string
// (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetLogLevel(internal.ParseLevel(level))
}

// CloseLogger closes the log file if one was opened. Call before program
// exit when a log path was set.
func CloseLogger() {
	internal.CloseLogger()
}
