// Package logging builds the zap logger shared by Trailhead's
// binaries. The terminal UI owns stdout, so records only go to a file
// and logging is disabled entirely when no file is configured.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Mr-Dark-debug/trailhead/internal/config"
)

// New returns a logger for cfg. Every record carries a per-process
// session id so runs can be told apart in a shared log file.
func New(cfg config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.LogLevel, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.LogFile}
	zcfg.ErrorOutputPaths = []string{cfg.LogFile}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", cfg.LogFile, err)
	}
	return logger.With(zap.String("session", uuid.NewString())), nil
}
