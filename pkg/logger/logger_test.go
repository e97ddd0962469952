package logger

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"DEBUG":    zapcore.DebugLevel,
		"info":     zapcore.InfoLevel,
		"":         zapcore.InfoLevel,
		"WARNING":  zapcore.WarnLevel,
		"warn":     zapcore.WarnLevel,
		"ERROR":    zapcore.ErrorLevel,
		"CRITICAL": zapcore.DPanicLevel,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("TRACE")
	assert.Error(t, err)
}

func TestWriterLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWriterLogger(&buf, "WARNING")
	require.NoError(t, err)

	l.Debug("hidden debug", nil)
	l.Info("hidden info", nil)
	l.Warn("shown warn", map[string]any{"bytes": 3})
	l.Error("shown error", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, `"bytes": 3`)
	assert.Contains(t, out, "boom")
}

func TestCriticalDoesNotPanic(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWriterLogger(&buf, "CRITICAL")
	require.NoError(t, err)

	l.Error("filtered", nil)
	assert.NotPanics(t, func() { l.Critical("fatal-ish", nil) })
	assert.NotContains(t, buf.String(), "filtered")
	assert.Contains(t, buf.String(), "fatal-ish")
}

func TestNewWritesToLogFile(t *testing.T) {
	dir := t.TempDir()
	l, err := New(Options{Level: "DEBUG", Dir: dir, Name: "ai-playground"})
	require.NoError(t, err)

	l.Info("Program has started", nil)
	require.NoError(t, l.Sync())

	content, err := os.ReadFile(FilePath(dir, "ai-playground"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Program has started")
}

func TestOrNop(t *testing.T) {
	assert.IsType(t, NopLogger{}, OrNop(nil))

	var buf bytes.Buffer
	l, err := NewWriterLogger(&buf, "INFO")
	require.NoError(t, err)
	assert.Same(t, l, OrNop(l))
}
