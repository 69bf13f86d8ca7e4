//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/config"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB              *gorm.DB
	TransactionRepo payment.TransactionRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	repo, err := NewGormTransactionRepository(db, logger)
	require.NoError(t, err, "Failed to create transaction repository")

	return &TestContext{
		DB:              db,
		TransactionRepo: repo,
	}
}

// CreateTestRecord creates a journal entry with default values
func CreateTestRecord(t *testing.T, orderNumber string, direction payment.Direction) *payment.TransactionRecord {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	record := &payment.TransactionRecord{
		ID:              uuid.NewString(),
		Direction:       direction,
		TransactionType: payment.Authorization,
		TerminalID:      "TERM0001",
		OrderNumber:     orderNumber,
		Amount:          1050,
		TransactionTime: now,
		DateTimeCreated: now,
	}
	if direction == payment.DirectionRequest {
		record.Currency = payment.CurrencyBGN
	} else {
		record.FinalizationCode = payment.FinalizationSuccess
		record.FinalizationMessage = payment.FinalizationMessage(payment.FinalizationSuccess)
	}
	return record
}
