// Package logger holds the process-wide structured logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sugar is the shared logger. It discards everything until Init is called.
var Sugar = zap.NewNop().Sugar()

// Init configures Sugar. Development mode logs at debug level in a console
// format, otherwise only info and above is written as JSON. Both write to stderr.
func Init(development bool) error {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Sugar = l.Sugar()
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = Sugar.Sync()
}
