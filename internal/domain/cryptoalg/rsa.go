package cryptoalg

// KeyMaterialPrivate holds the eight PKCS#1 RSA private key parameters as
// big-endian unsigned byte sequences, aligned to the lengths prescribed by the modulus size.
type KeyMaterialPrivate struct {
	Modulus             []byte
	PublicExponent      []byte
	PrivateExponent     []byte
	PrimeP              []byte
	PrimeQ              []byte
	ExponentDP          []byte
	ExponentDQ          []byte
	CoefficientInverseQ []byte
}

// ModulusBits returns the bit length implied by the aligned modulus.
func (k *KeyMaterialPrivate) ModulusBits() int {
	return len(k.Modulus) * 8
}

// Public returns the public half of the key material.
func (k *KeyMaterialPrivate) Public() *KeyMaterialPublic {
	return &KeyMaterialPublic{
		Modulus:        k.Modulus,
		PublicExponent: k.PublicExponent,
	}
}

// KeyMaterialPublic holds an RSA modulus and public exponent. It is used for verification only.
type KeyMaterialPublic struct {
	Modulus        []byte
	PublicExponent []byte
}

// ModulusBits returns the bit length implied by the aligned modulus.
func (k *KeyMaterialPublic) ModulusBits() int {
	return len(k.Modulus) * 8
}

// KeyDecoder turns DER buffers into raw RSA key material.
type KeyDecoder interface {
	// DecodePrivateKey parses a PKCS#1 RSAPrivateKey DER sequence.
	DecodePrivateKey(der []byte) (*KeyMaterialPrivate, error)

	// DecodePublicKey parses an X.509 SubjectPublicKeyInfo DER sequence holding an RSA key.
	DecodePublicKey(der []byte) (*KeyMaterialPublic, error)
}

// RSASigner computes and checks RSASSA-PKCS1-v1.5 signatures over SHA-1 digests.
type RSASigner interface {
	// Sign returns a signature exactly as long as the modulus.
	// Failures wrap ErrSigning and must not be retried.
	Sign(message []byte, privateKey *KeyMaterialPrivate) ([]byte, error)

	// Verify reports whether signature is valid for message.
	// Any failure, whatever its cause, is reported as false.
	Verify(message, signature []byte, publicKey *KeyMaterialPublic) bool
}

// KeyStore provides the merchant private key and the gateway public key.
type KeyStore interface {
	// PrivateKey returns the merchant signing key.
	PrivateKey() (*KeyMaterialPrivate, error)

	// PublicKey returns the gateway verification key.
	PublicKey() (*KeyMaterialPublic, error)
}

// KeyGenerator creates RSA key pairs and persists them as PEM files.
type KeyGenerator interface {
	// GenerateKeys returns a PKCS#1 private key and an X.509 SubjectPublicKeyInfo public key, both DER encoded.
	GenerateKeys(keySize int) (privateDER, publicDER []byte, err error)

	// SavePrivateKeyToFile writes a PKCS#1 DER private key as an "RSA PRIVATE KEY" PEM file.
	SavePrivateKeyToFile(privateDER []byte, filename string) error

	// SavePublicKeyToFile writes a SubjectPublicKeyInfo DER public key as a "PUBLIC KEY" PEM file.
	SavePublicKeyToFile(publicDER []byte, filename string) error
}
