//go:build unit
// +build unit

package payment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validRecord() *TransactionRecord {
	now := time.Now().UTC()
	return &TransactionRecord{
		ID:               uuid.New().String(),
		Direction:        DirectionResponse,
		TransactionType:  Authorization,
		TerminalID:       "62160001",
		OrderNumber:      "ORD-1",
		Amount:           1050,
		Currency:         "BGN",
		FinalizationCode: "00",
		TransactionTime:  now,
		DateTimeCreated:  now,
	}
}

func TestTransactionRecordValidate(t *testing.T) {
	assert.NoError(t, validRecord().Validate())

	t.Run("request without finalization code", func(t *testing.T) {
		r := validRecord()
		r.Direction = DirectionRequest
		r.FinalizationCode = ""
		assert.NoError(t, r.Validate())
	})

	t.Run("empty order number", func(t *testing.T) {
		r := validRecord()
		r.OrderNumber = ""
		assert.NoError(t, r.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*TransactionRecord)
		field  string
	}{
		{"invalid id", func(r *TransactionRecord) { r.ID = "not-a-uuid" }, "ID"},
		{"unknown direction", func(r *TransactionRecord) { r.Direction = "inbound" }, "Direction"},
		{"order number too long", func(r *TransactionRecord) { r.OrderNumber = "0123456789ABCDEF" }, "OrderNumber"},
		{"negative amount", func(r *TransactionRecord) { r.Amount = -1 }, "Amount"},
		{"non-digit finalization code", func(r *TransactionRecord) { r.FinalizationCode = "0A" }, "FinalizationCode"},
		{"missing transaction time", func(r *TransactionRecord) { r.TransactionTime = time.Time{} }, "TransactionTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(r)

			err := r.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "Field: "+tt.field)
		})
	}
}

func TestTransactionQuery(t *testing.T) {
	q := NewTransactionQuery()
	assert.Equal(t, "date_time_created", q.SortBy)
	assert.Equal(t, "desc", q.SortOrder)
	assert.NoError(t, q.Validate())

	q.Direction = DirectionRequest
	q.FinalizationCode = "95"
	q.Limit = 10
	q.Offset = 20
	assert.NoError(t, q.Validate())

	tests := []struct {
		name   string
		mutate func(*TransactionQuery)
		field  string
	}{
		{"unknown sort column", func(q *TransactionQuery) { q.SortBy = "amount; drop table" }, "SortBy"},
		{"unknown sort order", func(q *TransactionQuery) { q.SortOrder = "up" }, "SortOrder"},
		{"negative limit", func(q *TransactionQuery) { q.Limit = -1 }, "Limit"},
		{"negative offset", func(q *TransactionQuery) { q.Offset = -5 }, "Offset"},
		{"unknown direction", func(q *TransactionQuery) { q.Direction = "both" }, "Direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewTransactionQuery()
			tt.mutate(q)

			err := q.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "Field: "+tt.field)
		})
	}
}
