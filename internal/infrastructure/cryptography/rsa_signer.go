package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // the gateway protocol mandates SHA-1
	"errors"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/logger"
)

var bigOne = big.NewInt(1)

// rsaSigner implements cryptoalg.RSASigner with RSASSA-PKCS1-v1.5 over SHA-1.
// It keeps no key state, so one instance may be shared by concurrent callers.
type rsaSigner struct {
	logger logger.Logger
}

// NewRSASigner creates and returns a new signature engine
func NewRSASigner(logger logger.Logger) (cryptoalg.RSASigner, error) {
	return &rsaSigner{
		logger: logger,
	}, nil
}

// Sign hashes message with SHA-1 and signs the digest with the private key material.
func (r *rsaSigner) Sign(message []byte, privateKey *cryptoalg.KeyMaterialPrivate) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("%w: private key material cannot be nil", cryptoalg.ErrSigning)
	}

	key, err := toRSAPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoalg.ErrSigning, err)
	}

	digest := sha1.Sum(message) //nolint:gosec
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA1, digest[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoalg.ErrSigning, err)
	}

	r.logger.Debug("Signed ", len(message), "-byte message")
	return signature, nil
}

// Verify reports whether signature is a valid SHA-1 PKCS#1 v1.5 signature of message.
// Every failure collapses to false so callers cannot tell why a signature was rejected.
func (r *rsaSigner) Verify(message, signature []byte, publicKey *cryptoalg.KeyMaterialPublic) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
		if !valid {
			r.logger.Warn("Signature verification failed")
		}
	}()

	if publicKey == nil {
		return false
	}
	key, err := toRSAPublicKey(publicKey)
	if err != nil {
		return false
	}
	if len(signature) != key.Size() {
		return false
	}

	digest := sha1.Sum(message) //nolint:gosec
	return rsa.VerifyPKCS1v15(key, crypto.SHA1, digest[:], signature) == nil
}

func toRSAPublicKey(k *cryptoalg.KeyMaterialPublic) (*rsa.PublicKey, error) {
	e, err := exponentInt(k.PublicExponent)
	if err != nil {
		return nil, err
	}
	n := new(big.Int).SetBytes(k.Modulus)
	if n.Sign() == 0 {
		return nil, errors.New("modulus is zero")
	}
	return &rsa.PublicKey{N: n, E: e}, nil
}

// toRSAPrivateKey builds an *rsa.PrivateKey from the raw parameters and rejects
// material whose CRT values disagree with the primes and private exponent.
func toRSAPrivateKey(k *cryptoalg.KeyMaterialPrivate) (*rsa.PrivateKey, error) {
	publicKey, err := toRSAPublicKey(k.Public())
	if err != nil {
		return nil, err
	}

	d := new(big.Int).SetBytes(k.PrivateExponent)
	p := new(big.Int).SetBytes(k.PrimeP)
	q := new(big.Int).SetBytes(k.PrimeQ)

	if err := checkCRTParameters(d, p, q, k); err != nil {
		return nil, err
	}

	key := &rsa.PrivateKey{
		PublicKey: *publicKey,
		D:         d,
		Primes:    []*big.Int{p, q},
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("invalid RSA key: %w", err)
	}
	key.Precompute()
	return key, nil
}

func checkCRTParameters(d, p, q *big.Int, k *cryptoalg.KeyMaterialPrivate) error {
	if p.Cmp(bigOne) <= 0 || q.Cmp(bigOne) <= 0 {
		return errors.New("primes must be greater than one")
	}

	dp := new(big.Int).Mod(d, new(big.Int).Sub(p, bigOne))
	dq := new(big.Int).Mod(d, new(big.Int).Sub(q, bigOne))
	qInv := new(big.Int).ModInverse(q, p)
	if qInv == nil {
		return errors.New("prime Q has no inverse modulo P")
	}

	if dp.Cmp(new(big.Int).SetBytes(k.ExponentDP)) != 0 ||
		dq.Cmp(new(big.Int).SetBytes(k.ExponentDQ)) != 0 ||
		qInv.Cmp(new(big.Int).SetBytes(k.CoefficientInverseQ)) != 0 {
		return errors.New("CRT parameters do not match the key")
	}
	return nil
}

func exponentInt(b []byte) (int, error) {
	e := new(big.Int).SetBytes(b)
	if e.BitLen() > 31 {
		return 0, errors.New("public exponent is too large")
	}
	if e.Int64() < 3 {
		return 0, errors.New("public exponent is too small")
	}
	return int(e.Int64()), nil
}
