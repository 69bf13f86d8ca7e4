package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/logger"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/validators"
)

// rsaKeyGenerator struct that implements the KeyGenerator interface
type rsaKeyGenerator struct {
	logger logger.Logger
}

// NewRSAKeyGenerator creates and returns a new instance of rsaKeyGenerator
func NewRSAKeyGenerator(logger logger.Logger) (cryptoalg.KeyGenerator, error) {
	return &rsaKeyGenerator{
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified bit size.
// The gateway expects 1024-bit keys (128-byte signatures).
func (r *rsaKeyGenerator) GenerateKeys(keySize int) ([]byte, []byte, error) {
	if !validators.IsSupportedRSAKeySize(keySize) {
		return nil, nil, fmt.Errorf("unsupported RSA key size %d", keySize)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}

	publicDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal public key: %w", err)
	}

	r.logger.Info("Generated ", keySize, "-bit RSA key pair")
	return x509.MarshalPKCS1PrivateKey(privateKey), publicDER, nil
}

// SavePrivateKeyToFile saves the RSA private key to a PEM-encoded file (PKCS#1 format).
func (r *rsaKeyGenerator) SavePrivateKeyToFile(privateDER []byte, filename string) error {
	if err := writePEMFile(filename, pemBlockTypes[PEMRSAPrivateKey], privateDER); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}
	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// SavePublicKeyToFile saves the RSA public key to a PEM-encoded file (PKIX format).
func (r *rsaKeyGenerator) SavePublicKeyToFile(publicDER []byte, filename string) error {
	if err := writePEMFile(filename, pemBlockTypes[PEMRSAPublicKey], publicDER); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}
	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

func writePEMFile(filename, blockType string, der []byte) error {
	file, err := os.OpenFile(filepath.Clean(filename), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	if err := pem.Encode(file, &pem.Block{Type: blockType, Bytes: der}); err != nil {
		return fmt.Errorf("failed to encode key: %w", err)
	}
	return nil
}
