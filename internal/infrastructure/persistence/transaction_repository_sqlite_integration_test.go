//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
	"github.com/MGTheTrain/borica-gateway/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestRecord(t, "ORD-2024-0001", payment.DirectionRequest)

	err := ctx.TransactionRepo.Create(context.Background(), record)
	require.NoError(t, err)

	var model models.TransactionModel
	err = ctx.DB.First(&model, "id = ?", record.ID).Error
	require.NoError(t, err)
	assert.Equal(t, record.OrderNumber, model.OrderNumber)
	assert.Equal(t, "request", model.Direction)
	assert.Equal(t, "BGN", model.Currency)
}

func TestTransactionSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestRecord(t, "ORD-2024-0001", payment.DirectionResponse)
	require.NoError(t, ctx.TransactionRepo.Create(context.Background(), record))

	fetched, err := ctx.TransactionRepo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, fetched.ID)
	assert.Equal(t, payment.DirectionResponse, fetched.Direction)
	assert.Equal(t, "00", fetched.FinalizationCode)
	assert.True(t, record.TransactionTime.Equal(fetched.TransactionTime))
}

func TestTransactionRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.TransactionRepo.GetByID(context.Background(), "non-existent-id")
	assert.ErrorIs(t, err, payment.ErrTransactionNotFound)
}

func TestTransactionRepository_Create_Invalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.TransactionRepo.Create(context.Background(), &payment.TransactionRecord{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestTransactionRepository_List_WithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	request := CreateTestRecord(t, "ORD-A", payment.DirectionRequest)
	response := CreateTestRecord(t, "ORD-A", payment.DirectionResponse)
	other := CreateTestRecord(t, "ORD-B", payment.DirectionResponse)
	other.FinalizationCode = "94"
	for _, r := range []*payment.TransactionRecord{request, response, other} {
		require.NoError(t, ctx.TransactionRepo.Create(context.Background(), r))
	}

	query := payment.NewTransactionQuery()
	query.OrderNumber = "ORD-A"
	records, err := ctx.TransactionRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	query = payment.NewTransactionQuery()
	query.Direction = payment.DirectionResponse
	records, err = ctx.TransactionRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	query = payment.NewTransactionQuery()
	query.FinalizationCode = "94"
	records, err = ctx.TransactionRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, other.ID, records[0].ID)

	query = payment.NewTransactionQuery()
	query.Since = time.Now().Add(time.Hour)
	records, err = ctx.TransactionRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTransactionRepository_List_SortAndPagination(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	base := time.Now().UTC().Truncate(time.Second)
	for i, order := range []string{"ORD-1", "ORD-2", "ORD-3"} {
		record := CreateTestRecord(t, order, payment.DirectionRequest)
		record.DateTimeCreated = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, ctx.TransactionRepo.Create(context.Background(), record))
	}

	query := payment.NewTransactionQuery()
	query.Limit = 2
	records, err := ctx.TransactionRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ORD-3", records[0].OrderNumber)
	assert.Equal(t, "ORD-2", records[1].OrderNumber)

	query.SortBy = "order_number"
	query.SortOrder = "asc"
	query.Offset = 1
	records, err = ctx.TransactionRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ORD-2", records[0].OrderNumber)

	records, err = ctx.TransactionRepo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestTransactionRepository_List_InvalidQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	query := payment.NewTransactionQuery()
	query.SortBy = "amount; DROP TABLE transactions"

	_, err := ctx.TransactionRepo.List(context.Background(), query)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query parameters")
}
