package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/logger"
)

// transactionMetadataService implements the TransactionMetadataService interface
type transactionMetadataService struct {
	journal payment.TransactionRepository
	logger  logger.Logger
}

// NewTransactionMetadataService creates a new transactionMetadataService instance
func NewTransactionMetadataService(journal payment.TransactionRepository, logger logger.Logger) (payment.TransactionMetadataService, error) {
	if journal == nil {
		return nil, fmt.Errorf("transaction repository is required")
	}
	return &transactionMetadataService{
		journal: journal,
		logger:  logger,
	}, nil
}

// List retrieves journal entries matching query.
func (s *transactionMetadataService) List(ctx context.Context, query *payment.TransactionQuery) ([]*payment.TransactionRecord, error) {
	records, err := s.journal.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return records, nil
}

// GetByID retrieves a single journal entry.
func (s *transactionMetadataService) GetByID(ctx context.Context, recordID string) (*payment.TransactionRecord, error) {
	record, err := s.journal.GetByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return record, nil
}
