// Package logger provides structured logging for songflow.
// It wraps the standard log/slog package so every package logs with the
// same handler and snake_case field names.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the default logger instance. Library code logs through it
// unless a caller injects its own *slog.Logger.
var Logger *slog.Logger

func init() {
	Logger = newJSONLogger(os.Stderr, slog.LevelInfo)
}

func newJSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// SetLevel configures the logging level of the default logger.
func SetLevel(level slog.Level) {
	Logger = newJSONLogger(os.Stderr, level)
}

// SetOutput redirects the default logger to w at the given level.
func SetOutput(w io.Writer, level slog.Level) {
	Logger = newJSONLogger(w, level)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// WithPipeline returns a logger carrying the pipeline name.
func WithPipeline(base *slog.Logger, pipeline string) *slog.Logger {
	if base == nil {
		base = Logger
	}
	return base.With(slog.String("pipeline", pipeline))
}

// Debug logs a debug message on the default logger.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an informational message on the default logger.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning on the default logger.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error on the default logger.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
