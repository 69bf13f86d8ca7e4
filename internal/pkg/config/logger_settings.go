package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Console output formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Rotation limits used by file loggers that leave them unset
const (
	DefaultLogMaxSize    = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28
)

// LoggerSettings configures the process-wide logger.
type LoggerSettings struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType  string `mapstructure:"log_type" validate:"required,oneof=console file"`
	// Format applies to console output only; files are always written as JSON lines.
	Format   string `mapstructure:"format" validate:"omitempty,oneof=text json"`
	FilePath string `mapstructure:"file_path" validate:"required_if=LogType file"`

	// Rotation limits in megabytes, files and days. Zero selects the default.
	MaxSize    int `mapstructure:"max_size" validate:"omitempty,min=1,max=100"`
	MaxBackups int `mapstructure:"max_backups" validate:"omitempty,min=1,max=10"`
	MaxAge     int `mapstructure:"max_age" validate:"omitempty,min=1,max=365"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	return nil
}

// WithRotationDefaults returns a copy in which unset rotation limits take their default values.
func (s LoggerSettings) WithRotationDefaults() LoggerSettings {
	if s.MaxSize == 0 {
		s.MaxSize = DefaultLogMaxSize
	}
	if s.MaxBackups == 0 {
		s.MaxBackups = DefaultLogMaxBackups
	}
	if s.MaxAge == 0 {
		s.MaxAge = DefaultLogMaxAge
	}
	return s
}
