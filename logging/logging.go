package logging

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

type Logger interface {
	Info(context.Context, string, ...Field)
	Error(context.Context, string, ...Field)
	Debug(context.Context, string, ...Field)
	Sync() error
	With(fields ...Field) Logger
}

func String(k, v string) Field {
	return zap.String(k, v)
}

func Strings(k string, v []string) Field {
	return zap.Strings(k, v)
}

func Int(k string, i int) Field {
	return zap.Int(k, i)
}

func Duration(k string, d time.Duration) Field {
	return zap.Duration(k, d)
}

func Error(v error) Field {
	return zap.Error(v)
}

func NewProductionLogger() (Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	return &wrapLogger{logger}, nil
}

func NewDevelopmentLogger() (Logger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	return &wrapLogger{logger}, nil
}

func NewNopLogger() Logger {
	return &wrapLogger{zap.NewNop()}
}

type wrapLogger struct {
	*zap.Logger
}

func (l wrapLogger) With(fields ...Field) Logger {
	return &wrapLogger{l.Logger.With(fields...)}
}

func (l wrapLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.Logger.Info(msg, fields...)
}

func (l wrapLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.Logger.Error(msg, fields...)
}

func (l wrapLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.Logger.Debug(msg, fields...)
}
