package logger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/MGTheTrain/borica-gateway/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger initializes the singleton logger.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the initialized logger instance.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

// newLogger builds the Logger described by c: console output as text or JSON,
// file output as rotated JSON lines.
func newLogger(c *config.LoggerSettings) (Logger, error) {
	if c == nil {
		return nil, fmt.Errorf("logger settings cannot be nil")
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if c.LogType == config.LogTypeFile {
		rotated := c.WithRotationDefaults()
		return NewFileLogger(rotated.LogLevel, rotated.FilePath, rotated.MaxSize, rotated.MaxBackups, rotated.MaxAge), nil
	}
	if c.Format == config.LogFormatJSON {
		return NewJSONConsoleLogger(c.LogLevel), nil
	}
	return NewConsoleLogger(c.LogLevel), nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError, config.LogLevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
