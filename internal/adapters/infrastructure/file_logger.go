package infrastructure

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weathercli.app/internal/ports"
)

// FileLoggerAdapter appends JSON lines to a file
type FileLoggerAdapter struct {
	filePath string
	minLevel slog.Level
	now      func() time.Time
	mutex    sync.Mutex
}

// NewFileLoggerAdapter creates a new file logger adapter writing entries at or above minLevel
func NewFileLoggerAdapter(logPath string, minLevel slog.Level) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &FileLoggerAdapter{
		filePath: logPath,
		minLevel: minLevel,
		now:      time.Now,
	}, nil
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelDebug, msg, fields...)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelInfo, msg, fields...)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelWarn, msg, fields...)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelError, msg, fields...)
}

func (f *FileLoggerAdapter) writeLogEntry(level slog.Level, msg string, fields ...ports.Field) {
	if level < f.minLevel {
		return
	}

	logEntry := map[string]interface{}{
		"timestamp": f.now().Format(time.RFC3339),
		"level":     level.String(),
		"message":   msg,
	}
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			logEntry[field.Key] = err.Error()
			continue
		}
		logEntry[field.Key] = field.Value
	}

	jsonData, err := json.Marshal(logEntry)
	if err != nil {
		f.writeRawLog(fmt.Sprintf(`{"level":"ERROR","message":"failed to marshal log entry: %v"}`, err))
		return
	}
	f.writeRawLog(string(jsonData))
}

func (f *FileLoggerAdapter) writeRawLog(data string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	file, err := os.OpenFile(f.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}()

	if _, err := file.WriteString(data + "\n"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
