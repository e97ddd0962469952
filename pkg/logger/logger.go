// Package logger provides the leveled logging used across the chat client.
package logger

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging interface used by the library.
type Logger interface {
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Debug(msg string, obj any)
	Error(msg string, obj any)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Debug(string, any) {}
func (NopLogger) Error(string, any) {}

// Options controls where log lines go and which ones are kept.
type Options struct {
	// Level is one of DEBUG, INFO, WARNING, ERROR, CRITICAL.
	Level string
	Dir   string
	Name  string
}

// ZapLogger adapts a zap logger to Logger.
type ZapLogger struct {
	z *zap.Logger
}

// ParseLevel maps a --logLevel name to the zap level used as the threshold.
// CRITICAL maps to DPanic, the first zap level above Error.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return zapcore.DebugLevel, nil
	case "", "INFO":
		return zapcore.InfoLevel, nil
	case "WARNING", "WARN":
		return zapcore.WarnLevel, nil
	case "ERROR":
		return zapcore.ErrorLevel, nil
	case "CRITICAL":
		return zapcore.DPanicLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// FilePath returns the log file written for dir and name.
func FilePath(dir, name string) string {
	return filepath.Join(dir, name+".log")
}

// New builds a logger writing to <Dir>/<Name>.log through a rotating file sink.
func New(opts Options) (*ZapLogger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	sink := &lumberjack.Logger{
		Filename:   FilePath(opts.Dir, opts.Name),
		MaxSize:    10,
		MaxBackups: 3,
	}
	return newZapLogger(sink, level), nil
}

// NewWriterLogger builds a logger that writes to an io.Writer.
func NewWriterLogger(w io.Writer, level string) (*ZapLogger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return newZapLogger(w, lvl), nil
}

func newZapLogger(w io.Writer, level zapcore.Level) *ZapLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
	return &ZapLogger{z: zap.New(core)}
}

func fields(obj any) []zap.Field {
	switch v := obj.(type) {
	case nil:
		return nil
	case error:
		return []zap.Field{zap.Error(v)}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]zap.Field, 0, len(keys))
		for _, k := range keys {
			out = append(out, zap.Any(k, v[k]))
		}
		return out
	default:
		return []zap.Field{zap.Any("obj", v)}
	}
}

func (l *ZapLogger) Info(msg string, obj any)  { l.z.Info(msg, fields(obj)...) }
func (l *ZapLogger) Warn(msg string, obj any)  { l.z.Warn(msg, fields(obj)...) }
func (l *ZapLogger) Debug(msg string, obj any) { l.z.Debug(msg, fields(obj)...) }
func (l *ZapLogger) Error(msg string, obj any) { l.z.Error(msg, fields(obj)...) }

// Critical logs at the CRITICAL level without exiting or panicking.
func (l *ZapLogger) Critical(msg string, obj any) { l.z.DPanic(msg, fields(obj)...) }

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() error { return l.z.Sync() }

// OrNop returns l, or a NopLogger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
