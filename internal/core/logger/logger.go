package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

// New builds a logger for the given environment.
// "production" emits JSON, anything else emits colored console output.
// An unparsable level keeps the environment default and is reported once the logger exists.
func New(environment string, level string) (*zap.Logger, error) {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, levelErr := zapcore.ParseLevel(level)
	if levelErr == nil {
		config.Level = zap.NewAtomicLevelAt(l)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	if levelErr != nil {
		logger.Warn("Invalid log level, using default",
			zap.String("level", level),
			zap.Stringer("default", config.Level.Level()),
		)
	}

	return logger.With(zap.String("env", environment)), nil
}

// Init initializes the global logger.
func Init(environment string, level string) error {
	logger, err := New(environment, level)
	if err != nil {
		return err
	}

	globalLogger = logger
	return nil
}

// Get returns the global logger instance.
// If not initialized, it returns a no-op logger to prevent panics.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Sync flushes any buffered log entries.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}
