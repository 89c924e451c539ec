package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig("info", "json", "crypto-aul", "test", "dev", false)
	InitLoggerWithWriter(cfg, &buf)

	slog.Default().Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "crypto-aul", entry["service"])
}

func TestTextLoggingRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig("warn", "text", "crypto-aul", "test", "dev", false)
	InitLoggerWithWriter(cfg, &buf)

	slog.Default().Info("dropped")
	slog.Default().Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()

	_, ok := RequestIDFromContext(ctx)
	assert.False(t, ok)

	id := GenerateRequestID()
	ctx = WithRequestID(ctx, id)

	got, ok := RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
	assert.False(t, cfg.IsJSON())
}

func TestProductionConfig(t *testing.T) {
	cfg := ProductionConfig()
	assert.True(t, cfg.IsJSON())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
	assert.False(t, cfg.AddSource)
}
