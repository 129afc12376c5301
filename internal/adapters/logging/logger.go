// Package logging provides the zap-backed implementation of the logger
// port.
package logging

import (
	"github.com/ceresdesign/ceres-sync/internal/ports"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Ensure zapLogger implements ports.Logger.
var _ ports.Logger = (*zapLogger)(nil)

// New creates a logger writing to the process's standard streams. With
// verbose false only error lines are emitted.
func New(verbose bool) ports.Logger {
	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.InfoLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true

	logger, err := cfg.Build()
	if err != nil {
		return Nop()
	}
	return &zapLogger{sugar: logger.Sugar()}
}

// Nop returns a logger that discards everything. Used by tests.
func Nop() ports.Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Infof(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Errorf(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}
