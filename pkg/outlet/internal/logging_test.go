package internal

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.raw))
		})
	}
}

func TestSetRawLogLevel(t *testing.T) {
	t.Cleanup(func() { SetLogLevel(slog.LevelInfo) })

	SetRawLogLevel("error")
	assert.Equal(t, slog.LevelError, levelVar.Level())

	SetRawLogLevel("debug")
	assert.Equal(t, slog.LevelDebug, levelVar.Level())
}
