package cryptography

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
)

// PEMType selects the kind of PEM block DecodePEM expects.
type PEMType int

// PEM block kinds
const (
	// PEMCertificate is an X.509 certificate; DecodePEM returns its SubjectPublicKeyInfo.
	PEMCertificate PEMType = iota
	// PEMRSAPrivateKey is a PKCS#1 "RSA PRIVATE KEY".
	PEMRSAPrivateKey
	// PEMRSAPublicKey is an X.509 "PUBLIC KEY".
	PEMRSAPublicKey
)

var pemBlockTypes = map[PEMType]string{
	PEMCertificate:   "CERTIFICATE",
	PEMRSAPrivateKey: "RSA PRIVATE KEY",
	PEMRSAPublicKey:  "PUBLIC KEY",
}

func (t PEMType) String() string {
	if blockType, ok := pemBlockTypes[t]; ok {
		return blockType
	}
	return fmt.Sprintf("PEMType(%d)", int(t))
}

// DecodePEM extracts the DER bytes of the first PEM block in data, which must be of the given kind.
func DecodePEM(data []byte, kind PEMType) ([]byte, error) {
	expected, ok := pemBlockTypes[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported PEM type %d", int(kind))
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", cryptoalg.ErrMalformedKey)
	}
	if block.Type != expected {
		return nil, fmt.Errorf("%w: expected PEM block %q, got %q", cryptoalg.ErrMalformedKey, expected, block.Type)
	}

	if kind != PEMCertificate {
		return block.Bytes, nil
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoalg.ErrMalformedKey, err)
	}
	return cert.RawSubjectPublicKeyInfo, nil
}

// DecodePublicKeyPEM accepts either a "PUBLIC KEY" or a "CERTIFICATE" block and returns SubjectPublicKeyInfo DER.
func DecodePublicKeyPEM(data []byte) ([]byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", cryptoalg.ErrMalformedKey)
	}
	if block.Type == pemBlockTypes[PEMCertificate] {
		return DecodePEM(data, PEMCertificate)
	}
	return DecodePEM(data, PEMRSAPublicKey)
}
