// Package observability provides logging and metrics for the store layer.
package observability

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// LoggingConfig defines which types of automated logging are enabled.
type LoggingConfig struct {
	EnableStoreLogging bool
}

// Config holds the current logging configuration.
var Config = LoggingConfig{
	EnableStoreLogging: true,
}

// StoreLogger provides structured logging for store operations.
type StoreLogger struct {
	entity string
	logger *Logger
}

// NewStoreLogger creates a new StoreLogger for the given entity.
func NewStoreLogger(entity string) *StoreLogger {
	return &StoreLogger{
		entity: entity,
		logger: GlobalLogger,
	}
}

// LogMutation logs a store mutation (create, delete, like, follow, ...).
func (l *StoreLogger) LogMutation(ctx context.Context, operation string, fields map[string]interface{}) {
	if !Config.EnableStoreLogging {
		return
	}
	attrs := []any{
		slog.String("entity", l.entity),
		slog.String("operation", operation),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.InfoContext(ctx, "store mutation", attrs...)
}

// LogRejected logs a store operation rejected by a consistency rule.
func (l *StoreLogger) LogRejected(ctx context.Context, operation string, err error) {
	if !Config.EnableStoreLogging {
		return
	}
	l.logger.WarnContext(ctx, "store operation rejected",
		slog.String("entity", l.entity),
		slog.String("operation", operation),
		slog.String("reason", err.Error()),
	)
}
