package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger represents the component for writing messages to log.
// It is an alias of zap.Logger, so structured context is passed
// with zap fields.
type Logger = zap.Logger

// Prm groups the required parameters of the Logger constructor.
type Prm struct {
	// Minimum severity of the recorded messages.
	//
	// One of "debug", "info", "warn", "error". Empty value
	// defaults to "info".
	Level string
}

// New creates a ready-to-go Logger instance.
//
// Records contain timestamp, level, message and optional
// structured context. The core entry data is serialized in a
// plain-text format designed for human consumption, the
// structured context is left as JSON.
func New(prm Prm) (*Logger, error) {
	lvl := zapcore.InfoLevel

	if prm.Level != "" {
		if err := lvl.UnmarshalText([]byte(prm.Level)); err != nil {
			return nil, fmt.Errorf("incorrect logger level: %w", err)
		}
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return c.Build(
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)),
	)
}
