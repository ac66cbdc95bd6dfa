// Package logging provides the structured logger used throughout trajopt.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Logger is the structured logger interface used across the builder. It is a thin
// wrapper around zap's SugaredLogger so call sites can use key/value pairs without
// depending on zap directly.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	With(args ...interface{}) Logger
}

type impl struct {
	*zap.SugaredLogger
}

func (l *impl) With(args ...interface{}) Logger {
	return &impl{l.SugaredLogger.With(args...)}
}

// NewLogger returns a new Logger that writes Info+ logs to stderr.
func NewLogger(name string) Logger {
	base, err := zap.NewProduction()
	if err != nil {
		base = zap.NewNop()
	}
	return &impl{base.Sugar().Named(name)}
}

// NewDebugLogger returns a new Logger that writes Debug+ logs to stderr.
func NewDebugLogger(name string) Logger {
	base, err := zap.NewDevelopment()
	if err != nil {
		base = zap.NewNop()
	}
	return &impl{base.Sugar().Named(name)}
}

// NewTestLogger returns a Logger that writes through the test's t.Log, so failures
// surface their trace in the failing test's output.
func NewTestLogger(tb testing.TB) Logger {
	return &impl{zaptest.NewLogger(tb).Sugar()}
}
