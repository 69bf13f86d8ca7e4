package commands

import (
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/infrastructure/cryptography"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for handling RSA key files via CLI.
type KeyCommandHandler struct{}

// NewKeyCommandHandler initializes a new KeyCommandHandler.
func NewKeyCommandHandler() *KeyCommandHandler {
	return &KeyCommandHandler{}
}

// GenerateKeysCmd generates an RSA key pair and persists it in a selected directory
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	keyDir, err := requiredString(cmd, "key-dir")
	if err != nil {
		return err
	}

	generator, err := cryptography.NewRSAKeyGenerator(env.logger)
	if err != nil {
		return err
	}

	privateDER, publicDER, err := generator.GenerateKeys(keySize)
	if err != nil {
		return err
	}

	uniqueID := uuid.New()

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", uniqueID.String()))
	if err := generator.SavePrivateKeyToFile(privateDER, privateKeyFilePath); err != nil {
		return err
	}

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", uniqueID.String()))
	if err := generator.SavePublicKeyToFile(publicDER, publicKeyFilePath); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", privateKeyFilePath, publicKeyFilePath)
	return err
}

// InspectKeyCmd decodes a PEM key file and prints its modulus size and public exponent
func (commandHandler *KeyCommandHandler) InspectKeyCmd(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}

	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return fmt.Errorf("invalid private-key flag: %w", err)
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return fmt.Errorf("invalid public-key flag: %w", err)
	}
	if (privateKeyPath == "") == (publicKeyPath == "") {
		return fmt.Errorf("exactly one of --private-key and --public-key is required")
	}

	keyStore, err := env.keyStore(privateKeyPath, publicKeyPath)
	if err != nil {
		return err
	}

	var publicKey *cryptoalg.KeyMaterialPublic
	kind := "public"
	if privateKeyPath != "" {
		privateKey, err := keyStore.PrivateKey()
		if err != nil {
			return err
		}
		publicKey = privateKey.Public()
		kind = "private"
	} else {
		publicKey, err = keyStore.PublicKey()
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Key type:         RSA %s\nModulus size:     %d bits\nPublic exponent:  0x%s\n",
		kind, publicKey.ModulusBits(), hex.EncodeToString(publicKey.PublicExponent))
	return err
}

// InitKeyCommands registers key-related commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler := NewKeyCommandHandler()

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", 1024, "RSA key size in bits (the gateway uses 1024)")
	generateKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the RSA keys")
	rootCmd.AddCommand(generateKeysCmd)

	var inspectKeyCmd = &cobra.Command{
		Use:   "inspect-key",
		Short: "Decode an RSA key file and print its parameters",
		RunE:  handler.InspectKeyCmd,
	}
	inspectKeyCmd.Flags().StringP("private-key", "", "", "Path to an RSA private key")
	inspectKeyCmd.Flags().StringP("public-key", "", "", "Path to a public key or certificate")
	rootCmd.AddCommand(inspectKeyCmd)

	return nil
}
