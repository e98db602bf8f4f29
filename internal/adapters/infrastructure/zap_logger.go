package infrastructure

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"weathercli.app/internal/ports"
)

// ZapLoggerAdapter implements the Logger port using zap
type ZapLoggerAdapter struct {
	logger *zap.Logger
}

// NewZapLoggerAdapter wraps an existing zap logger
func NewZapLoggerAdapter(logger *zap.Logger) *ZapLoggerAdapter {
	return &ZapLoggerAdapter{logger: logger}
}

// NewProductionZapLogger builds a JSON zap logger on stderr at the given level
func NewProductionZapLogger(level slog.Level) (*ZapLoggerAdapter, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLoggerAdapter(logger), nil
}

func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level <= slog.LevelDebug:
		return zapcore.DebugLevel
	case level <= slog.LevelInfo:
		return zapcore.InfoLevel
	case level <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Debug logs a debug message
func (z *ZapLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	z.logger.Debug(msg, zapFields(fields)...)
}

// Info logs an info message
func (z *ZapLoggerAdapter) Info(msg string, fields ...ports.Field) {
	z.logger.Info(msg, zapFields(fields)...)
}

// Warn logs a warning message
func (z *ZapLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	z.logger.Warn(msg, zapFields(fields)...)
}

// Error logs an error message
func (z *ZapLoggerAdapter) Error(msg string, fields ...ports.Field) {
	z.logger.Error(msg, zapFields(fields)...)
}

// Sync flushes buffered entries
func (z *ZapLoggerAdapter) Sync() error {
	return z.logger.Sync()
}

func zapFields(fields []ports.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			out = append(out, zap.NamedError(field.Key, err))
			continue
		}
		out = append(out, zap.Any(field.Key, field.Value))
	}
	return out
}
