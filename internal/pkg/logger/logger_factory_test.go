//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MGTheTrain/borica-gateway/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func handlerOf(t *testing.T, l Logger) slog.Handler {
	t.Helper()
	sl, ok := l.(*slogLogger)
	require.True(t, ok, "expected *slogLogger, got %T", l)
	return sl.logger.Handler()
}

func TestNewLogger_SelectsHandler(t *testing.T) {
	t.Run("console text", func(t *testing.T) {
		l, err := newLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole})
		require.NoError(t, err)
		assert.IsType(t, &slog.TextHandler{}, handlerOf(t, l))
	})

	t.Run("console json", func(t *testing.T) {
		l, err := newLogger(&config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  config.LogTypeConsole,
			Format:   config.LogFormatJSON,
		})
		require.NoError(t, err)
		assert.IsType(t, &slog.JSONHandler{}, handlerOf(t, l))
	})

	t.Run("file with default rotation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gateway.log")
		l, err := newLogger(&config.LoggerSettings{
			LogLevel: config.LogLevelWarning,
			LogType:  config.LogTypeFile,
			FilePath: path,
		})
		require.NoError(t, err)
		assert.IsType(t, &slog.JSONHandler{}, handlerOf(t, l))

		l.Warn("gateway public key reloaded")
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})
}

func TestNewLogger_Errors(t *testing.T) {
	_, err := newLogger(nil)
	assert.Error(t, err)

	_, err = newLogger(&config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole})
	assert.ErrorContains(t, err, "invalid config")

	_, err = newLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile})
	assert.ErrorContains(t, err, "invalid config")
}

func TestInitLogger_FailureLeavesNoLogger(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	err := InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"})
	require.Error(t, err)

	l, getErr := GetLogger()
	assert.Nil(t, l)
	assert.ErrorContains(t, getErr, "not initialized")
}

func TestInitLogger_FirstSettingsWin(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	first, err := GetLogger()
	require.NoError(t, err)

	require.NoError(t, InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
		Format:   config.LogFormatJSON,
	}))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.IsType(t, &slog.TextHandler{}, handlerOf(t, second))
}

func TestParseLevel(t *testing.T) {
	levels := map[string]slog.Level{
		config.LogLevelDebug:    slog.LevelDebug,
		config.LogLevelInfo:     slog.LevelInfo,
		config.LogLevelWarning:  slog.LevelWarn,
		config.LogLevelError:    slog.LevelError,
		config.LogLevelCritical: slog.LevelError,
		"":                      slog.LevelInfo,
	}

	for level, expected := range levels {
		assert.Equal(t, expected, parseLevel(level), "level %q", level)
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs())
	assert.Equal(t, "Loaded private key merchant.pem", formatArgs("Loaded private key ", "merchant.pem"))
	assert.Equal(t, "Generated 1024-bit RSA key pair", formatArgs("Generated ", 1024, "-bit RSA key pair"))
}
