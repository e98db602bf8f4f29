package ports

import (
	"context"
	"time"
)

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordWeatherAPICall(ctx context.Context, provider string, success bool)
	RecordWeatherAPIDuration(ctx context.Context, provider string, duration time.Duration)
	Flush() error
}

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}
