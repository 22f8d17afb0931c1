// Package logger builds the application's zap logger from configuration.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/EmreNP/sendikaapp-sub000/internal/conf"
	"github.com/EmreNP/sendikaapp-sub000/internal/provider"
)

// NewLogger creates the root zap logger. Dev mode gets a human-readable
// console encoder; every other mode logs JSON. The returned cleanup flushes
// buffered entries on shutdown.
func NewLogger(cfg *conf.LogConfig, mode provider.AppMode) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	if mode == "dev" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Filename != "" {
		zapCfg.OutputPaths = []string{cfg.Filename, "stderr"}
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	cleanup := func() {
		_ = logger.Sync()
	}
	return logger, cleanup, nil
}
