package testutil

import (
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFile create a test files
func CreateTestFile(fileName string, content []byte) error {
	err := os.WriteFile(fileName, content, 0600)
	if err != nil {
		return fmt.Errorf("failed to create test file: %w", err)
	}
	return nil
}

// CreatePEMFile writes der as a PEM block of blockType into the test's temp dir and returns its path.
func CreatePEMFile(t *testing.T, fileName, blockType string, der []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), fileName)
	content := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	require.NoError(t, CreateTestFile(path, content))

	return path
}
