//go:build unit
// +build unit

package cryptography

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRSAKeyGenerator(t *testing.T) cryptoalg.KeyGenerator {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	generator, err := NewRSAKeyGenerator(logger)
	require.NoError(t, err)
	return generator
}

func TestRSAKeyGenerator(t *testing.T) {
	generator := setupRSAKeyGenerator(t)
	decoder := setupRSAKeyDecoder(t)

	t.Run("GenerateKeys", func(t *testing.T) {
		privateDER, publicDER, err := generator.GenerateKeys(TestKeySize1024)
		require.NoError(t, err)

		private, err := decoder.DecodePrivateKey(privateDER)
		require.NoError(t, err)
		public, err := decoder.DecodePublicKey(publicDER)
		require.NoError(t, err)

		assert.Equal(t, TestKeySize1024, private.ModulusBits())
		assert.Equal(t, private.Public(), public)
	})

	t.Run("UnsupportedKeySize", func(t *testing.T) {
		_, _, err := generator.GenerateKeys(1000)
		assert.Error(t, err)
	})

	t.Run("SaveAndReadKeys", func(t *testing.T) {
		tmpDir := t.TempDir()
		privFile := filepath.Join(tmpDir, "merchant.key")
		pubFile := filepath.Join(tmpDir, "merchant.pub")

		privateDER, publicDER, err := generator.GenerateKeys(TestKeySize1024)
		require.NoError(t, err)

		require.NoError(t, generator.SavePrivateKeyToFile(privateDER, privFile))
		require.NoError(t, generator.SavePublicKeyToFile(publicDER, pubFile))

		info, err := os.Stat(privFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		store := setupFileKeyStore(t, privFile, pubFile)
		private, err := store.PrivateKey()
		require.NoError(t, err)
		public, err := store.PublicKey()
		require.NoError(t, err)
		assert.Equal(t, private.Public(), public)
	})

	t.Run("SaveToMissingDirectory", func(t *testing.T) {
		err := generator.SavePrivateKeyToFile([]byte{0x30}, filepath.Join(t.TempDir(), "missing", "key.pem"))
		assert.Error(t, err)
	})
}
