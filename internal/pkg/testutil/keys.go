package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"testing"

	"github.com/stretchr/testify/require"
)

// GenerateTestKeyPair returns a fresh PKCS#1 private key DER and its PKIX SubjectPublicKeyInfo DER.
func GenerateTestKeyPair(t *testing.T, bits int) (privateDER, publicDER []byte) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)

	publicDER, err = x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return x509.MarshalPKCS1PrivateKey(key), publicDER
}
