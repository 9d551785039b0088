package config

import (
	"context"
	"log/slog"
)

// loggerKey stores the run logger in the command context. Commands
// retrieve it through GetLogger without importing the cli package, which
// would cycle.
type loggerKey struct{}

// LoggerKey returns the context key used for storing the logger.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from a command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

var currentConfig *Config

// GetCurrentConfig returns the configuration loaded by the most recent
// LoadConfig call.
func GetCurrentConfig() *Config {
	return currentConfig
}
