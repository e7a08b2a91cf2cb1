// Package logging wraps zap behind a small leveled logger so the rest of
// the codebase never touches zap types directly.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a leveled, structured logger.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New creates a logger at the given level. Unknown levels fall back to
// info.
func New(level string) (logger *Logger) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	z, err := cfg.Build()
	if err != nil {
		z, _ = zap.NewProduction()
	}

	logger = &Logger{sugar: z.Sugar()}
	return logger
}

// NewNop creates a logger that discards everything. Useful in tests.
func NewNop() (logger *Logger) {
	logger = &Logger{sugar: zap.NewNop().Sugar()}
	return logger
}

// With returns a child logger with additional key-value context.
func (l *Logger) With(keyvals ...any) (child *Logger) {
	child = &Logger{sugar: l.sugar.With(keyvals...)}
	return child
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.sugar.Debugw(msg, keyvals...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.sugar.Infow(msg, keyvals...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.sugar.Warnw(msg, keyvals...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.sugar.Errorw(msg, keyvals...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() (err error) {
	err = l.sugar.Sync()
	return err
}

func parseLevel(level string) (parsed zapcore.Level) {
	switch strings.ToLower(level) {
	case "debug":
		parsed = zapcore.DebugLevel
	case "warn", "warning":
		parsed = zapcore.WarnLevel
	case "error":
		parsed = zapcore.ErrorLevel
	default:
		parsed = zapcore.InfoLevel
	}
	return parsed
}
