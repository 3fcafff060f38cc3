package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger for the given server mode. Any mode other
// than "development" gets the production JSON encoder.
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config

	if mode == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	return cfg.Build()
}

// Must creates a logger or panics.
func Must(mode string) *zap.Logger {
	log, err := New(mode)
	if err != nil {
		panic(err)
	}
	return log
}
