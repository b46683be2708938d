package common

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Fields represents structured logging fields.
type Fields map[string]any

// ParseLevel converts a level name (debug, info, warn, error) to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, level)
	}
}

// SetupLogger installs the default logger writing to stderr.
func SetupLogger(level, format string) error {
	return SetupLoggerTo(os.Stderr, level, format)
}

// SetupLoggerTo installs the default logger writing to w.
func SetupLoggerTo(w io.Writer, level, format string) error {
	slogLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: slogLevel}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "", "console":
		handler = slog.NewTextHandler(w, opts)
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func logWithFields(level slog.Level, msg string, fields Fields, extra ...slog.Attr) {
	attrs := make([]slog.Attr, 0, len(fields)+len(extra))
	attrs = append(attrs, extra...)
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	slog.LogAttrs(context.Background(), level, msg, attrs...)
}

// LogError logs an error with additional context.
func LogError(err error, msg string, fields Fields) {
	logWithFields(slog.LevelError, msg, fields, slog.String("error", err.Error()))
}

// LogWarn logs a warning with fields.
func LogWarn(msg string, fields Fields) {
	logWithFields(slog.LevelWarn, msg, fields)
}

// LogInfo logs an info message with fields.
func LogInfo(msg string, fields Fields) {
	logWithFields(slog.LevelInfo, msg, fields)
}

// LogDebug logs a debug message with fields.
func LogDebug(msg string, fields Fields) {
	logWithFields(slog.LevelDebug, msg, fields)
}
