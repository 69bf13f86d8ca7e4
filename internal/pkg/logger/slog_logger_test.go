//go:build unit
// +build unit

package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/borica-gateway/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, config.LogLevelInfo)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestTextLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, config.LogLevelDebug)

	logger.Debug("decoded ", 2048, "-bit key")

	assert.Contains(t, buf.String(), "decoded 2048-bit key")
}

func TestTextLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, config.LogLevelInfo)

	assert.PanicsWithValue(t, "boom", func() {
		logger.Panic("boom")
	})
	assert.Contains(t, buf.String(), "boom")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}

func TestNewFileLogger_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.log")
	logger := NewFileLogger(config.LogLevelInfo, path, 1, 1, 1)

	logger.Info("request built")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "request built", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestJSONLogger_WritesOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, config.LogLevelWarning)

	logger.Info("suppressed")
	logger.Warn("journal write failed for order ", "ORDER-42")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "journal write failed for order ORDER-42", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
}
