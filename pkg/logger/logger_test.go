package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_FileSink(t *testing.T) {
	sink := filepath.Join(t.TempDir(), "app.log")
	log, err := NewLogger(Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "test")
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("visible")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(sink)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"visible"`)
	require.Contains(t, string(data), `"logger":"test"`)
	require.NotContains(t, string(data), "hidden")
}

func TestNewLogger_UnopenableSink(t *testing.T) {
	sink := filepath.Join(t.TempDir(), "missing", "app.log")
	log, err := NewLogger(Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "test")
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "open log sink")
	require.Nil(t, log)
}

func TestNewLogger_Stdout(t *testing.T) {
	log, err := NewLogger(Log{LogLevel: zapcore.InfoLevel}, "test")
	require.NoError(t, err)
	require.NotNil(t, log)
}
