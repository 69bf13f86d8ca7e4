//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"

	"github.com/stretchr/testify/mock"
)

// MockGatewayService is a mock implementation of GatewayService
type MockGatewayService struct {
	mock.Mock
}

func (m *MockGatewayService) BuildRequestParameter(ctx context.Context, request *payment.RequestMessage) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockGatewayService) ParseResponse(ctx context.Context, eBorica string) (*payment.ResponseMessage, error) {
	args := m.Called(ctx, eBorica)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.ResponseMessage), args.Error(1)
}

// MockTransactionMetadataService is a mock implementation of TransactionMetadataService
type MockTransactionMetadataService struct {
	mock.Mock
}

func (m *MockTransactionMetadataService) List(ctx context.Context, query *payment.TransactionQuery) ([]*payment.TransactionRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.TransactionRecord), args.Error(1)
}

func (m *MockTransactionMetadataService) GetByID(ctx context.Context, recordID string) (*payment.TransactionRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.TransactionRecord), args.Error(1)
}
