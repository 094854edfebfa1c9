package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface handed to every layer. Error and Fatal take the
// cause separately so callers never build zap.Error themselves.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, err error, fields ...zap.Field)
	Fatal(msg string, err error, fields ...zap.Field)
	With(fields ...zap.Field) Logger
	Sync() error
}

const envProduction = "production"

type zapLogger struct {
	base *zap.Logger
}

func NewZapLogger(env string) Logger {
	zl, err := zapConfigFor(env).Build(zap.AddCallerSkip(1))
	if err != nil {
		log.Fatalf("logger: build zap config for env %q: %v", env, err)
	}
	return &zapLogger{base: zl}
}

func NewNopLogger() Logger {
	return &zapLogger{base: zap.NewNop()}
}

// zapConfigFor emits JSON without stacktraces in production and colored
// console output everywhere else.
func zapConfigFor(env string) zap.Config {
	if env != envProduction {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return cfg
	}

	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func withCause(err error, fields []zap.Field) []zap.Field {
	if err == nil {
		return fields
	}
	return append(fields, zap.Error(err))
}

func (l *zapLogger) Debug(msg string, fields ...zap.Field) { l.base.Debug(msg, fields...) }

func (l *zapLogger) Info(msg string, fields ...zap.Field) { l.base.Info(msg, fields...) }

func (l *zapLogger) Warn(msg string, fields ...zap.Field) { l.base.Warn(msg, fields...) }

func (l *zapLogger) Error(msg string, err error, fields ...zap.Field) {
	l.base.Error(msg, withCause(err, fields)...)
}

func (l *zapLogger) Fatal(msg string, err error, fields ...zap.Field) {
	l.base.Fatal(msg, withCause(err, fields)...)
}

func (l *zapLogger) With(fields ...zap.Field) Logger {
	return &zapLogger{base: l.base.With(fields...)}
}

func (l *zapLogger) Sync() error { return l.base.Sync() }
