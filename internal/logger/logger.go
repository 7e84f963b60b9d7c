// Package logger builds the zap logger used across the placement
// server.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a configured zap logger. With json set, logs are emitted
// as structured JSON for production collectors; otherwise a readable
// console encoding is used. Debug lowers the level to include debug
// lines.
func New(json, debug bool) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	encoding := "console"
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	if json {
		encoding = "json"
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "ts"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	cfg := zap.Config{
		Level:             level,
		Development:       debug,
		DisableCaller:     !debug,
		DisableStacktrace: !debug,
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
