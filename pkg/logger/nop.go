package logger

import (
	"context"

	"go.uber.org/zap/zapcore"
)

// NewNop returns a logger that discards everything. Intended for tests.
func NewNop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Context(ctx context.Context) context.Context { return ctx }

func (nopLogger) Debug(context.Context, string, ...zapcore.Field) {}
func (nopLogger) Info(context.Context, string, ...zapcore.Field)  {}
func (nopLogger) Warn(context.Context, string, ...zapcore.Field)  {}
func (nopLogger) Error(context.Context, string, ...zapcore.Field) {}
