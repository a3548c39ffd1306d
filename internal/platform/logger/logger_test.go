// Package logger_test contains tests for the logger package
package logger_test

import (
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/fitcircle/internal/config"
	"github.com/phrazzld/fitcircle/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &logger.TestLogBuffer{}
	l, err := logger.SetupWithWriter(config.LogConfig{Level: "warn"}, buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "info should be filtered at warn level")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "value", entry["key"])

	assert.Same(t, l, slog.Default(), "Setup should install the logger as default")
}

func TestSetupRedactsPersonalData(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &logger.TestLogBuffer{}
	l, err := logger.SetupWithWriter(config.LogConfig{Level: "info"}, buf)
	require.NoError(t, err)

	l.Info("user updated", "username", "alice", "email", "alice@example.com", "note", "reach me at alice@example.com")

	logger.AssertLogField(t, buf, "username", "alice")
	logger.AssertLogField(t, buf, "email", "[REDACTED]")
	logger.AssertLogField(t, buf, "note", "reach me at [REDACTED_EMAIL]")
	assert.NotContains(t, buf.String(), "alice@example.com")
}

func TestInvalidLogLevelFallsBackToInfo(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &logger.TestLogBuffer{}
	l, err := logger.SetupWithWriter(config.LogConfig{Level: "chatty"}, buf)
	require.NoError(t, err)

	l.Debug("debug message")
	l.Info("info message")

	assert.NotContains(t, buf.String(), "debug message")
	logger.AssertLogContains(t, buf, "info message")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"fatal", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNewTestLoggerCapturesFields(t *testing.T) {
	l, buf := logger.NewTestLogger(t)
	l.Debug("member added", "component", "community")

	logger.AssertLogField(t, buf, "component", "community")
	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOrDefault(t *testing.T) {
	assert.Same(t, slog.Default(), logger.OrDefault(nil))

	l, _ := logger.NewTestLogger(t)
	assert.Same(t, l, logger.OrDefault(l))
}
