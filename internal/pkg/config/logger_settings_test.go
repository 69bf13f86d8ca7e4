//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings LoggerSettings
		valid    bool
	}{
		{"console", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole}, true},
		{"console json", LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole, Format: LogFormatJSON}, true},
		{"file with default rotation", LoggerSettings{LogLevel: LogLevelWarning, LogType: LogTypeFile, FilePath: "/var/log/borica/gateway.log"}, true},
		{"file with explicit rotation", LoggerSettings{LogLevel: LogLevelError, LogType: LogTypeFile, FilePath: "gateway.log", MaxSize: 100, MaxBackups: 10, MaxAge: 365}, true},
		{"critical level", LoggerSettings{LogLevel: LogLevelCritical, LogType: LogTypeConsole}, true},
		{"no level", LoggerSettings{LogType: LogTypeConsole}, false},
		{"unknown level", LoggerSettings{LogLevel: "trace", LogType: LogTypeConsole}, false},
		{"no type", LoggerSettings{LogLevel: LogLevelInfo}, false},
		{"unknown type", LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, false},
		{"unknown format", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole, Format: "xml"}, false},
		{"file without path", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile}, false},
		{"max size above limit", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "a.log", MaxSize: 101}, false},
		{"negative backups", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "a.log", MaxBackups: -1}, false},
		{"max age above limit", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "a.log", MaxAge: 366}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoggerSettingsWithRotationDefaults(t *testing.T) {
	s := LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "a.log", MaxBackups: 7}

	withDefaults := s.WithRotationDefaults()

	assert.Equal(t, DefaultLogMaxSize, withDefaults.MaxSize)
	assert.Equal(t, 7, withDefaults.MaxBackups)
	assert.Equal(t, DefaultLogMaxAge, withDefaults.MaxAge)
	assert.Zero(t, s.MaxSize, "receiver must not be modified")
}
