//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const restConfigYAML = `
port: "9090"
logger:
  log_level: debug
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
gateway:
  terminal_id: "62160001"
  private_key_path: /etc/borica/merchant.key
  public_key_path: /etc/borica/gateway.pem
  gateway_url: https://gate.borica.bg/boreps/registerTransaction
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	cfg, err := InitializeRestConfig(writeConfig(t, restConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "62160001", cfg.Gateway.TerminalID)
	assert.Equal(t, "/etc/borica/gateway.pem", cfg.Gateway.PublicKeyPath)
}

func TestInitializeRestConfigEnvOverride(t *testing.T) {
	t.Setenv("BORICA_GATEWAY_TERMINAL_ID", "99990000")
	t.Setenv("BORICA_PORT", "7070")

	cfg, err := InitializeRestConfig(writeConfig(t, restConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "99990000", cfg.Gateway.TerminalID)
	assert.Equal(t, "7070", cfg.Port)
}

func TestInitializeRestConfigMissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestInitializeRestConfigInvalid(t *testing.T) {
	content := `
port: "9090"
gateway:
  terminal_id: "62160001"
`
	_, err := InitializeRestConfig(writeConfig(t, content))
	assert.Error(t, err)
}

func TestInitializeCliConfigDefaults(t *testing.T) {
	cfg, err := InitializeCliConfig("")
	require.NoError(t, err)

	assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Empty(t, cfg.Gateway.TerminalID)
}

func TestInitializeCliConfigEnvOnly(t *testing.T) {
	t.Setenv("BORICA_GATEWAY_TERMINAL_ID", "62160001")
	t.Setenv("BORICA_GATEWAY_PUBLIC_KEY_PATH", "/etc/borica/gateway.pem")

	cfg, err := InitializeCliConfig("")
	require.NoError(t, err)

	assert.Equal(t, "62160001", cfg.Gateway.TerminalID)
	assert.Equal(t, "/etc/borica/gateway.pem", cfg.Gateway.PublicKeyPath)
	assert.Empty(t, cfg.Gateway.PrivateKeyPath)
}
