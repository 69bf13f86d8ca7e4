//go:build integration
// +build integration

package persistence

import (
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/borica-gateway/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBConnection_SQLiteFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "journal.db")

	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "migration must be repeatable")
	assert.True(t, db.Migrator().HasTable("transactions"))
}

func TestNewDBConnection_InvalidSettings(t *testing.T) {
	_, err := NewDBConnection(config.DatabaseSettings{Type: "mysql", DSN: "root@/borica"})
	assert.Error(t, err)

	_, err = NewDBConnection(config.DatabaseSettings{
		Type: config.PostgresDbType,
		DSN:  "user=postgres host=localhost",
		Name: `borica"; DROP DATABASE postgres; --`,
	})
	assert.ErrorContains(t, err, "SQL identifier")
}
