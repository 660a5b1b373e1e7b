package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
		wantErr  bool
	}{
		{"", zapcore.WarnLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{" INFO ", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.WarnLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("doctor", "warn", &buf)
	require.NoError(t, err)

	logger.Debug("hidden message")
	logger.Warn("visible message", "check", "disk")
	logger.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "visible message")
	assert.Contains(t, out, "doctor")
	assert.Contains(t, out, "disk")

	require.NoError(t, logger.SetLevel("debug"))
	logger.With("probe", "uname").Debug("now visible")
	logger.Sync()
	assert.Contains(t, buf.String(), "now visible")
	assert.Equal(t, zapcore.DebugLevel, logger.Level())
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger("doctor", "chatty", nil)
	assert.Error(t, err)
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNopLogger()
	assert.NotPanics(t, func() {
		logger.Error("ignored")
		logger.Named("child").Info("ignored")
		logger.Sync()
	})
}
