package commands

import (
	"fmt"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
	"github.com/MGTheTrain/borica-gateway/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/borica-gateway/internal/infrastructure/protocol"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/config"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const configFlag = "config"

// gatewayFlagTargets maps flags that may override gateway settings to the setting they replace.
func gatewayFlagTargets(settings *config.GatewaySettings) map[string]*string {
	return map[string]*string{
		"terminal-id": &settings.TerminalID,
		"private-key": &settings.PrivateKeyPath,
		"public-key":  &settings.PublicKeyPath,
		"gateway-url": &settings.GatewayURL,
		"timezone":    &settings.Timezone,
	}
}

// InitRootFlags registers the flags shared by every command.
func InitRootFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Path to a YAML configuration file (optional)")
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the --config file, if any, and applies the gateway flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.CliConfig, error) {
	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		path = ""
	}

	cfg, err := config.InitializeCliConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	for name, target := range gatewayFlagTargets(&cfg.Gateway) {
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			*target = flag.Value.String()
		}
	}
	return cfg, nil
}

// environment bundles what a command needs to work with keys and messages.
type environment struct {
	cfg     *config.CliConfig
	logger  logger.Logger
	decoder cryptoalg.KeyDecoder
	signer  cryptoalg.RSASigner
}

func newEnvironment(cmd *cobra.Command) (*environment, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	decoder, err := cryptography.NewRSAKeyDecoder(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key decoder: %w", err)
	}

	signer, err := cryptography.NewRSASigner(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create signer: %w", err)
	}

	return &environment{
		cfg:     cfg,
		logger:  loggerInstance,
		decoder: decoder,
		signer:  signer,
	}, nil
}

func (e *environment) codec() (payment.MessageCodec, error) {
	location, err := e.cfg.Gateway.Location()
	if err != nil {
		return nil, err
	}
	return protocol.NewMessageCodec(e.signer, e.logger, protocol.WithLocation(location))
}

func (e *environment) keyStore(privateKeyPath, publicKeyPath string) (cryptoalg.KeyStore, error) {
	return cryptography.NewFileKeyStore(privateKeyPath, publicKeyPath, e.decoder, e.logger)
}

func requiredString(cmd *cobra.Command, name string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if value == "" {
		return "", fmt.Errorf("--%s is required", name)
	}
	return value, nil
}
