package lasagna

import (
	"log/slog"

	"github.com/BrandonKowalski/lasagna/pkg/lasagna/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Without a path, logs go to
// stdout only.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the minimum level for the library's own trace
// logger. Navigation operations emit debug-level traces; set slog.LevelDebug
// to see them.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// CloseLogger closes the log file if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
