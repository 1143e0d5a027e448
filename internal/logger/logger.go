// Package logger is the structured logger shared by the sheet pipeline and
// services. The TUI owns stdout, so log lines go to stderr as slog text.
package logger

import (
	"log/slog"
	"os"
)

// Logger is the shared slog instance.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Error logs at error level with key-value attributes.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}
