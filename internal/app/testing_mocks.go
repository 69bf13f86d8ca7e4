//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"

	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, record *payment.TransactionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTransactionRepository) List(ctx context.Context, query *payment.TransactionQuery) ([]*payment.TransactionRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.TransactionRecord), args.Error(1)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, recordID string) (*payment.TransactionRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.TransactionRecord), args.Error(1)
}

// MockKeyStore is a mock implementation of KeyStore
type MockKeyStore struct {
	mock.Mock
}

func (m *MockKeyStore) PrivateKey() (*cryptoalg.KeyMaterialPrivate, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.KeyMaterialPrivate), args.Error(1)
}

func (m *MockKeyStore) PublicKey() (*cryptoalg.KeyMaterialPublic, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.KeyMaterialPublic), args.Error(1)
}
