package dynclient

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger is the reporting capability threaded through every operation call.
// Fail and Crash report the failure and return the error the caller should
// propagate: Fail marks a handled terminal outcome, Crash an invariant
// violation.
type Logger interface {
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Fail(code string, cause error, keysAndValues ...any) error
	Crash(code string, cause error, keysAndValues ...any) error
}

// ZapLogger adapts a zap logger to the Logger interface.
type ZapLogger struct {
	l *zap.SugaredLogger
}

// NewZapLogger wraps an existing zap logger.
func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{l: l.Sugar()}
}

// NewDefaultLogger builds the logger used when the configuration names none.
func NewDefaultLogger() *ZapLogger {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}

	return NewZapLogger(l)
}

func (z *ZapLogger) Info(msg string, keysAndValues ...any) {
	z.l.Infow(msg, keysAndValues...)
}

func (z *ZapLogger) Warn(msg string, keysAndValues ...any) {
	z.l.Warnw(msg, keysAndValues...)
}

func (z *ZapLogger) Fail(code string, cause error, keysAndValues ...any) error {
	z.l.Errorw(code, append(keysAndValues, zap.Error(cause))...)

	return fmt.Errorf("%s: %w", code, cause)
}

func (z *ZapLogger) Crash(code string, cause error, keysAndValues ...any) error {
	z.l.Errorw(code, append(keysAndValues, zap.Error(cause), zap.Stack("stacktrace"))...)

	return fmt.Errorf("%s: %w", code, cause)
}

// NopLogger discards all reports. Fail and Crash still return the wrapped
// error so the call chain behaves identically.
type NopLogger struct{}

func (NopLogger) Info(string, ...any) {}

func (NopLogger) Warn(string, ...any) {}

func (NopLogger) Fail(code string, cause error, _ ...any) error {
	return fmt.Errorf("%s: %w", code, cause)
}

func (NopLogger) Crash(code string, cause error, _ ...any) error {
	return fmt.Errorf("%s: %w", code, cause)
}
