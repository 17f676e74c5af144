// Package logging builds the zap loggers used across the binaries.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the logger's level, encoding and sink.
type Config struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`

	// Development switches to human readable console output.
	Development bool `yaml:"development"`

	// File, when set, receives the log instead of stderr. The terminal UI
	// sets it so logs do not corrupt the screen.
	File string `yaml:"file"`
}

// ParseLevel maps a level name to its zap level. Empty means info.
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return lvl, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return lvl, nil
}

// New builds a logger from cfg. Callers must Sync it before exiting.
func New(cfg Config) (*zap.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
