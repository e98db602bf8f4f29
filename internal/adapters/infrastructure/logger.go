// Package infrastructure holds the adapters for logging, metrics and time.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"weathercli.app/internal/ports"
)

// ParseLogLevel maps a configured level name onto a slog level
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level '%s'", name)
	}
}

// SlogLoggerAdapter implements the Logger port using slog
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter creates a logger writing human readable lines to w
func NewSlogLoggerAdapter(w io.Writer, level slog.Level) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// Debug logs a debug message
func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.logger.Debug(msg, slogArgs(fields)...)
}

// Info logs an info message
func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.logger.Info(msg, slogArgs(fields)...)
}

// Warn logs a warning message
func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.logger.Warn(msg, slogArgs(fields)...)
}

// Error logs an error message
func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.logger.Error(msg, slogArgs(fields)...)
}

func slogArgs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		args = append(args, field.Key, field.Value)
	}
	return args
}

// contextLogger prepends a fixed set of fields to every entry
type contextLogger struct {
	next   ports.Logger
	fields []ports.Field
}

// WithFields returns a logger that adds fields to every entry written through it
func WithFields(logger ports.Logger, fields ...ports.Field) ports.Logger {
	return &contextLogger{next: logger, fields: fields}
}

func (l *contextLogger) merge(fields []ports.Field) []ports.Field {
	merged := make([]ports.Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	return append(merged, fields...)
}

func (l *contextLogger) Debug(msg string, fields ...ports.Field) {
	l.next.Debug(msg, l.merge(fields)...)
}

func (l *contextLogger) Info(msg string, fields ...ports.Field) {
	l.next.Info(msg, l.merge(fields)...)
}

func (l *contextLogger) Warn(msg string, fields ...ports.Field) {
	l.next.Warn(msg, l.merge(fields)...)
}

func (l *contextLogger) Error(msg string, fields ...ports.Field) {
	l.next.Error(msg, l.merge(fields)...)
}

// teeLogger fans every entry out to several loggers
type teeLogger []ports.Logger

// Tee returns a logger writing to all of the given loggers
func Tee(loggers ...ports.Logger) ports.Logger {
	return teeLogger(loggers)
}

func (t teeLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Debug(msg, fields...)
	}
}

func (t teeLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Info(msg, fields...)
	}
}

func (t teeLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Warn(msg, fields...)
	}
}

func (t teeLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range t {
		l.Error(msg, fields...)
	}
}
