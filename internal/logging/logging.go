// Package logging builds the diagnostic zap logger. Player-facing messages
// go to the game log instead.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options control logger construction.
type Options struct {
	Level string // debug, info, warn or error
	// File redirects output away from stderr. Local terminal play must set
	// it so log lines do not corrupt the screen.
	File        string
	Development bool
}

// New builds a logger. Servers get JSON to stderr; development mode uses the
// console encoder.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
	}

	output := "stderr"
	if opts.File != "" {
		output = opts.File
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      opts.Development,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
		DisableCaller:    true,
	}
	if opts.Development {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		cfg.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return logger, nil
}
