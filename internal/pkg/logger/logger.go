// Package logger wraps a process-wide zap SugaredLogger behind ctx-first
// helpers so call sites can later pick request fields out of the context
// without changing signatures.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.SugaredLogger

func init() {
	l, _ := zap.NewProduction(zap.AddCallerSkip(1))
	global = l.Sugar()
}

// Init replaces the default production logger with one at the given level.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	global = l.Sugar()
	return nil
}

func Sync() { _ = global.Sync() }

func Debugf(_ context.Context, format string, args ...interface{}) {
	global.Debugf(format, args...)
}

func Info(_ context.Context, msg string) {
	global.Info(msg)
}

func Infof(_ context.Context, format string, args ...interface{}) {
	global.Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	global.Warnf(format, args...)
}

func Error(_ context.Context, msg string) {
	global.Error(msg)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	global.Errorf(format, args...)
}

func Fatal(_ context.Context, err error) {
	if err != nil {
		global.Fatal(err.Error())
	}
}
