package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ParseLevel(tt.input))
	}
}

func TestInit(t *testing.T) {
	Init(slog.LevelWarn)
	require.False(t, Enabled(slog.LevelInfo))
	require.True(t, Enabled(slog.LevelError))
	require.Same(t, L(), slog.Default())

	// Verify it doesn't panic
	Init(slog.LevelDebug)
	Debug("test message", "module", "logger")
	Info("test message")
	Warn("test message")
	Error("test message")
}
