package cryptography

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/logger"
)

// fileKeyStore reads PEM key files on first use and caches the decoded key material.
type fileKeyStore struct {
	privateKeyPath string
	publicKeyPath  string
	decoder        cryptoalg.KeyDecoder
	logger         logger.Logger

	mu         sync.Mutex
	privateKey *cryptoalg.KeyMaterialPrivate
	publicKey  *cryptoalg.KeyMaterialPublic
}

// NewFileKeyStore creates a key store for the merchant private key and the gateway public key (or certificate).
// Either path may be empty when the corresponding key is never needed.
func NewFileKeyStore(privateKeyPath, publicKeyPath string, decoder cryptoalg.KeyDecoder, logger logger.Logger) (cryptoalg.KeyStore, error) {
	if decoder == nil {
		return nil, errors.New("key decoder cannot be nil")
	}
	return &fileKeyStore{
		privateKeyPath: privateKeyPath,
		publicKeyPath:  publicKeyPath,
		decoder:        decoder,
		logger:         logger,
	}, nil
}

// PrivateKey returns the merchant signing key.
func (s *fileKeyStore) PrivateKey() (*cryptoalg.KeyMaterialPrivate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.privateKey != nil {
		return s.privateKey, nil
	}
	if s.privateKeyPath == "" {
		return nil, errors.New("no private key path configured")
	}

	data, err := os.ReadFile(filepath.Clean(s.privateKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read private key file: %w", err)
	}
	der, err := DecodePEM(data, PEMRSAPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("unable to decode private key file: %w", err)
	}
	key, err := s.decoder.DecodePrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key: %w", err)
	}

	s.privateKey = key
	s.logger.Info("Loaded private key ", s.privateKeyPath)
	return key, nil
}

// PublicKey returns the gateway verification key.
func (s *fileKeyStore) PublicKey() (*cryptoalg.KeyMaterialPublic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.publicKey != nil {
		return s.publicKey, nil
	}
	if s.publicKeyPath == "" {
		return nil, errors.New("no public key path configured")
	}

	data, err := os.ReadFile(filepath.Clean(s.publicKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read public key file: %w", err)
	}
	der, err := DecodePublicKeyPEM(data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode public key file: %w", err)
	}
	key, err := s.decoder.DecodePublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key: %w", err)
	}

	s.publicKey = key
	s.logger.Info("Loaded public key ", s.publicKeyPath)
	return key, nil
}
