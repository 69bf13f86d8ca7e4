package cryptography

import (
	"encoding/asn1"
	"fmt"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/logger"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/validators"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var oidRSAEncryption = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}

// rsaParameterSizes holds the byte length of each RSA parameter for one modulus size.
// The public exponent keeps its natural length; exponent is only its upper bound.
type rsaParameterSizes struct {
	modulus  int
	exponent int
	d        int
	p        int
	q        int
	dp       int
	dq       int
	inverseQ int
}

// sizeTable derives the parameter sizes from the modulus bit length, rounded up to the
// nearest supported key size.
func sizeTable(modulusBits int) (rsaParameterSizes, error) {
	for _, keySize := range validators.SupportedRSAKeySizes {
		if modulusBits <= keySize {
			full := keySize / 8
			half := keySize / 16
			return rsaParameterSizes{
				modulus:  full,
				exponent: full,
				d:        full,
				p:        half,
				q:        half,
				dp:       half,
				dq:       half,
				inverseQ: half,
			}, nil
		}
	}
	return rsaParameterSizes{}, fmt.Errorf("%w: unsupported modulus size of %d bits", cryptoalg.ErrMalformedKey, modulusBits)
}

// alignBytes left-pads value with zeros to exactly size bytes. The result never aliases value.
func alignBytes(value []byte, size int) ([]byte, error) {
	if len(value) > size {
		return nil, fmt.Errorf("%w: %d-byte parameter exceeds the expected %d bytes", cryptoalg.ErrMalformedKey, len(value), size)
	}
	aligned := make([]byte, size)
	copy(aligned[size-len(value):], value)
	return aligned, nil
}

func fitExponent(value []byte, maxSize int) ([]byte, error) {
	if len(value) > maxSize {
		return nil, fmt.Errorf("%w: %d-byte exponent is longer than the modulus", cryptoalg.ErrMalformedKey, len(value))
	}
	return append([]byte(nil), value...), nil
}

// outerLengthForm is the length encoding of the RSAPrivateKey SEQUENCE header.
type outerLengthForm int

const (
	// outerLengthOneByte is "30 81 LL".
	outerLengthOneByte outerLengthForm = iota + 1
	// outerLengthTwoBytes is "30 82 HH LL".
	outerLengthTwoBytes
)

// peekOuterLengthForm inspects the first two bytes of a PKCS#1 buffer without consuming them.
func peekOuterLengthForm(der []byte) (outerLengthForm, error) {
	if len(der) < 2 {
		return 0, fmt.Errorf("%w: %d bytes is too short for a SEQUENCE header", cryptoalg.ErrMalformedKey, len(der))
	}
	switch [2]byte{der[0], der[1]} {
	case [2]byte{derTagSequence, 0x81}:
		return outerLengthOneByte, nil
	case [2]byte{derTagSequence, 0x82}:
		return outerLengthTwoBytes, nil
	default:
		return 0, fmt.Errorf("%w: unexpected SEQUENCE header 0x%02x%02x", cryptoalg.ErrMalformedKey, der[0], der[1])
	}
}

// rsaKeyDecoder implements cryptoalg.KeyDecoder by walking the DER structures byte by byte.
type rsaKeyDecoder struct {
	logger logger.Logger
}

// NewRSAKeyDecoder creates a decoder for PKCS#1 private keys and X.509 SubjectPublicKeyInfo public keys.
func NewRSAKeyDecoder(logger logger.Logger) (cryptoalg.KeyDecoder, error) {
	return &rsaKeyDecoder{
		logger: logger,
	}, nil
}

// DecodePrivateKey parses a PKCS#1 RSAPrivateKey:
//
//	30 81 LL | 30 82 HH LL   SEQUENCE header
//	02 01 00                 version 0
//	02 ...                   modulus, publicExponent, privateExponent, P, Q, DP, DQ, InverseQ
func (d *rsaKeyDecoder) DecodePrivateKey(der []byte) (*cryptoalg.KeyMaterialPrivate, error) {
	form, err := peekOuterLengthForm(der)
	if err != nil {
		return nil, err
	}

	input := cryptobyte.String(der[2:])
	var declared int
	switch form {
	case outerLengthOneByte:
		var length uint8
		if !input.ReadUint8(&length) {
			return nil, fmt.Errorf("%w: truncated SEQUENCE length", cryptoalg.ErrMalformedKey)
		}
		declared = int(length)
	case outerLengthTwoBytes:
		var length uint16
		if !input.ReadUint16(&length) {
			return nil, fmt.Errorf("%w: truncated SEQUENCE length", cryptoalg.ErrMalformedKey)
		}
		declared = int(length)
	}

	var content []byte
	if !input.ReadBytes(&content, declared) {
		return nil, fmt.Errorf("%w: SEQUENCE declares %d bytes but only %d remain", cryptoalg.ErrMalformedKey, declared, len(input))
	}
	body := cryptobyte.String(content)

	var marker uint16
	var version uint8
	if !body.ReadUint16(&marker) || marker != 0x0201 {
		return nil, fmt.Errorf("%w: missing version marker", cryptoalg.ErrMalformedKey)
	}
	if !body.ReadUint8(&version) || version != 0x00 {
		return nil, fmt.Errorf("%w: unsupported version", cryptoalg.ErrMalformedKey)
	}

	var fields [8][]byte
	for i := range fields {
		fields[i], err = readInteger(&body)
		if err != nil {
			return nil, fmt.Errorf("failed to read private key parameter %d: %w", i+1, err)
		}
	}

	sizes, err := sizeTable(len(fields[0]) * 8)
	if err != nil {
		return nil, err
	}

	key := &cryptoalg.KeyMaterialPrivate{}
	targets := []struct {
		dst  *[]byte
		src  []byte
		size int
	}{
		{&key.Modulus, fields[0], sizes.modulus},
		{&key.PrivateExponent, fields[2], sizes.d},
		{&key.PrimeP, fields[3], sizes.p},
		{&key.PrimeQ, fields[4], sizes.q},
		{&key.ExponentDP, fields[5], sizes.dp},
		{&key.ExponentDQ, fields[6], sizes.dq},
		{&key.CoefficientInverseQ, fields[7], sizes.inverseQ},
	}
	for _, target := range targets {
		if *target.dst, err = alignBytes(target.src, target.size); err != nil {
			return nil, err
		}
	}
	if key.PublicExponent, err = fitExponent(fields[1], sizes.exponent); err != nil {
		return nil, err
	}

	d.logger.Debug("Decoded ", key.ModulusBits(), "-bit RSA private key")
	return key, nil
}

// DecodePublicKey parses an X.509 SubjectPublicKeyInfo: an outer SEQUENCE holding the
// AlgorithmIdentifier SEQUENCE (must name rsaEncryption) and a BIT STRING that wraps the RSAPublicKey SEQUENCE.
func (d *rsaKeyDecoder) DecodePublicKey(der []byte) (*cryptoalg.KeyMaterialPublic, error) {
	input := cryptobyte.String(der)

	var spki, algorithm, bitString, rsaKey cryptobyte.String
	var algorithmOID asn1.ObjectIdentifier
	var unusedBits uint8
	switch {
	case !input.ReadASN1(&spki, cbasn1.SEQUENCE):
		return nil, fmt.Errorf("%w: missing SubjectPublicKeyInfo SEQUENCE", cryptoalg.ErrMalformedKey)
	case !spki.ReadASN1(&algorithm, cbasn1.SEQUENCE):
		return nil, fmt.Errorf("%w: missing AlgorithmIdentifier SEQUENCE", cryptoalg.ErrMalformedKey)
	case !algorithm.ReadASN1ObjectIdentifier(&algorithmOID):
		return nil, fmt.Errorf("%w: missing algorithm OBJECT IDENTIFIER", cryptoalg.ErrMalformedKey)
	case !algorithmOID.Equal(oidRSAEncryption):
		return nil, fmt.Errorf("%w: algorithm %s is not rsaEncryption", cryptoalg.ErrMalformedKey, algorithmOID)
	case !spki.ReadASN1(&bitString, cbasn1.BIT_STRING):
		return nil, fmt.Errorf("%w: missing subjectPublicKey BIT STRING", cryptoalg.ErrMalformedKey)
	case !bitString.ReadUint8(&unusedBits) || unusedBits != 0:
		return nil, fmt.Errorf("%w: subjectPublicKey is not byte aligned", cryptoalg.ErrMalformedKey)
	case !bitString.ReadASN1(&rsaKey, cbasn1.SEQUENCE):
		return nil, fmt.Errorf("%w: missing RSAPublicKey SEQUENCE", cryptoalg.ErrMalformedKey)
	}

	modulus, err := readInteger(&rsaKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read modulus: %w", err)
	}
	exponent, err := readInteger(&rsaKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read public exponent: %w", err)
	}

	sizes, err := sizeTable(len(modulus) * 8)
	if err != nil {
		return nil, err
	}

	key := &cryptoalg.KeyMaterialPublic{}
	if key.Modulus, err = alignBytes(modulus, sizes.modulus); err != nil {
		return nil, err
	}
	if key.PublicExponent, err = fitExponent(exponent, sizes.exponent); err != nil {
		return nil, err
	}

	d.logger.Debug("Decoded ", key.ModulusBits(), "-bit RSA public key")
	return key, nil
}
