package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. BORICA_GATEWAY_TERMINAL_ID.
const EnvPrefix = "BORICA"

// RestConfig is the configuration of the REST API binary.
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Gateway  GatewaySettings  `mapstructure:"gateway"`
}

// Validate checks the configuration and every nested settings block.
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.StructPartial(c, "Port"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Gateway.Validate()
}

// CliConfig is the configuration of the CLI binary. Every block is optional and
// individual values can be supplied with flags instead.
type CliConfig struct {
	Logger  LoggerSettings  `mapstructure:"logger"`
	Gateway GatewaySettings `mapstructure:"gateway"`
}

// InitializeRestConfig loads the REST configuration from a YAML file.
func InitializeRestConfig(path string) (*RestConfig, error) {
	defaults := map[string]interface{}{
		"port":             "8080",
		"logger.log_level": LogLevelInfo,
		"logger.log_type":  LogTypeConsole,
		"database.type":    SqliteDbType,
		"database.dsn":     "borica.db",
		"database.name":    "",
	}
	for key, value := range gatewayDefaults {
		defaults[key] = value
	}

	cfg, err := readConfig[RestConfig](path, defaults)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitializeCliConfig loads the CLI configuration. An empty path yields defaults plus environment overrides.
func InitializeCliConfig(path string) (*CliConfig, error) {
	defaults := map[string]interface{}{
		"logger.log_level": LogLevelInfo,
		"logger.log_type":  LogTypeConsole,
	}
	for key, value := range gatewayDefaults {
		defaults[key] = value
	}
	return readConfig[CliConfig](path, defaults)
}

// gatewayDefaults registers every gateway key so that environment variables alone can set it.
var gatewayDefaults = map[string]interface{}{
	"gateway.terminal_id":      "",
	"gateway.private_key_path": "",
	"gateway.public_key_path":  "",
	"gateway.gateway_url":      "",
	"gateway.timezone":         "",
}

func readConfig[E any](path string, defaults map[string]interface{}) (*E, error) {
	vp := viper.New()
	for key, value := range defaults {
		vp.SetDefault(key, value)
	}

	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigFile(path)
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error while processing config file: %w", err)
		}
	}

	var cfg E
	if err := vp.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	return &cfg, nil
}
