package logger

import (
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *slog.Logger

// Init initializes the slog facade and the global zap logger with the specified verbose level
func Init(verbose bool) {
	level := slog.LevelWarn
	zapLevel := zapcore.WarnLevel
	if verbose {
		level = slog.LevelDebug
		zapLevel = zapcore.DebugLevel
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapLevel)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	if zl, err := zcfg.Build(); err == nil {
		zap.ReplaceGlobals(zl)
	} else {
		logger.Warn("Failed to build zap logger, keeping no-op global", "error", err)
	}
}

// Close flushes buffered log entries
func Close() {
	_ = zap.L().Sync()
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...any) {
	if logger != nil {
		logger.Error(msg, args...)
	}
}
