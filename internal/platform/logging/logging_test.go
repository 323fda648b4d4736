package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_NilContext(t *testing.T) {
	logger := FromContext(nil) //nolint:staticcheck // Testing nil guard intentionally
	assert.NotNil(t, logger)
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := FromContext(context.Background())
	assert.NotNil(t, logger)
}

func TestWithContext_RoundTrip(t *testing.T) {
	customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithContext(context.Background(), customLogger)
	assert.Equal(t, customLogger, FromContext(ctx))
}

func TestSetDefault_BacksContextFallback(t *testing.T) {
	previous := defaultLogger
	t.Cleanup(func() { SetDefault(previous) })

	var buf bytes.Buffer
	configured := slog.New(slog.NewJSONHandler(&buf, nil))

	SetDefault(configured)

	// a context without a stored logger must resolve to the configured one,
	// not the package-init default
	assert.Equal(t, configured, FromContext(context.Background()))

	FromContext(context.Background()).Info("fallback message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fallback message", entry["msg"])
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = WithRequestID(ctx, "req-123")

	FromContext(ctx).InfoContext(ctx, "test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
}

func TestWithCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = WithCorrelationID(ctx, "corr-789")

	FromContext(ctx).InfoContext(ctx, "test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "corr-789", entry["correlation_id"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{
		Level:   "info",
		Format:  "json",
		Service: "daily-quotes-app",
		Version: "test",
	}, &buf)

	logger.Info("hello", slog.String("k", "v"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "daily-quotes-app", entry["service_name"])
	assert.Equal(t, "v", entry["k"])
}

func TestNewWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: "debug", Format: "text", Service: "svc", Version: "v"}, &buf)

	logger.Debug("text line")

	assert.Contains(t, buf.String(), "text line")
}

func TestNewWithWriter_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: "info", Format: "pretty", Service: "svc", Version: "v"}, &buf)

	logger.Info("pretty line")

	assert.Contains(t, buf.String(), "pretty line")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: "warn", Format: "json", Service: "svc", Version: "v"}, &buf)

	logger.Info("suppressed")
	assert.Empty(t, buf.String())

	logger.Warn("emitted")
	assert.Contains(t, buf.String(), "emitted")
}

func TestNewWithWriter_FileMirror(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")

	var buf bytes.Buffer
	logger := NewWithWriter(Config{
		Level:   "info",
		Format:  "text",
		Service: "svc",
		Version: "v",
		File: FileConfig{
			Enabled:   true,
			Path:      logPath,
			MaxSizeMB: 1,
		},
	}, &buf)

	logger.Info("mirrored line")

	// Terminal output in the configured format
	assert.Contains(t, buf.String(), "mirrored line")

	// File output is JSON
	data, err := readFileEventually(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"mirrored line"`)
}

func TestRedaction_SensitiveFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: "info", Format: "json", Service: "svc", Version: "v"}, &buf)

	logger.Info("login", slog.String("password", "hunter2"), slog.String("author", "Seneca"))

	out := buf.String()
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "Seneca")
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiHandler(
		slog.NewJSONHandler(&a, nil),
		slog.NewTextHandler(&b, nil),
	)
	logger := slog.New(handler)

	logger.Info("fan out")

	assert.Contains(t, a.String(), "fan out")
	assert.Contains(t, b.String(), "fan out")
}

func TestMultiHandler_LevelGate(t *testing.T) {
	var verbose, quiet bytes.Buffer
	handler := NewMultiHandler(
		slog.NewTextHandler(&verbose, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(handler)

	logger.Debug("debug only")

	assert.Contains(t, verbose.String(), "debug only")
	assert.Empty(t, quiet.String())
}

// readFileEventually reads the log file written through lumberjack.
func readFileEventually(path string) ([]byte, error) {
	return os.ReadFile(path)
}
