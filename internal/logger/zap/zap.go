// Package zap adapts go.uber.org/zap to the internal/logger.Logger
// interface, optionally rotating file output through lumberjack.
package zap

import (
	"os"

	"ChordSim/internal/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Config controls how the zap logger is constructed.
type Config struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string
	// FilePath, if non-empty, additionally writes JSON logs through a
	// rotating lumberjack sink. Empty means stdout only.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a *zap.Logger per cfg. Console output always uses a
// human-readable console encoder; a file sink, when configured, uses a
// JSON encoder through lumberjack so rotated logs stay machine-parseable.
func New(cfg Config) (*zap.Logger, error) {
	lvl := parseLevel(cfg.Level)

	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(zapcore.AddSync(os.Stdout)), lvl),
	}

	if cfg.FilePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    orDefault(cfg.MaxSizeMB, 100),
			MaxBackups: orDefault(cfg.MaxBackups, 3),
			MaxAge:     orDefault(cfg.MaxAgeDays, 28),
		}
		jsonEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(jsonEncoder, zapcore.AddSync(rotator), lvl))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Adapter implements logger.Logger over a *zap.Logger.
type Adapter struct {
	z *zap.Logger
}

// NewAdapter wraps an existing *zap.Logger as a logger.Logger.
func NewAdapter(z *zap.Logger) logger.Logger {
	return Adapter{z: z}
}

func toZapFields(fields []logger.Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

func (a Adapter) Debug(msg string, fields ...logger.Field) { a.z.Debug(msg, toZapFields(fields)...) }
func (a Adapter) Info(msg string, fields ...logger.Field)  { a.z.Info(msg, toZapFields(fields)...) }
func (a Adapter) Warn(msg string, fields ...logger.Field)  { a.z.Warn(msg, toZapFields(fields)...) }
func (a Adapter) Error(msg string, fields ...logger.Field) { a.z.Error(msg, toZapFields(fields)...) }

func (a Adapter) Named(name string) logger.Logger {
	return Adapter{z: a.z.Named(name)}
}

func (a Adapter) With(fields ...logger.Field) logger.Logger {
	return Adapter{z: a.z.With(toZapFields(fields)...)}
}

// Sync flushes any buffered log entries.
func (a Adapter) Sync() error { return a.z.Sync() }
