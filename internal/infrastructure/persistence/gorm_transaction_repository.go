package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
	"github.com/MGTheTrain/borica-gateway/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTransactionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTransactionRepository creates a new GORM-based TransactionRepository implementation
func NewGormTransactionRepository(db *gorm.DB, logger logger.Logger) (payment.TransactionRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	return &gormTransactionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTransactionRepository) Create(ctx context.Context, record *payment.TransactionRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TransactionModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction record: %w", err)
	}

	r.logger.Info("Recorded ", record.Direction, " for order ", record.OrderNumber, " with id ", record.ID)
	return nil
}

func (r *gormTransactionRepository) List(ctx context.Context, query *payment.TransactionQuery) ([]*payment.TransactionRecord, error) {
	if query == nil {
		query = payment.NewTransactionQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.TransactionModel
	dbQuery := r.db.WithContext(ctx).Model(&models.TransactionModel{})

	if query.OrderNumber != "" {
		dbQuery = dbQuery.Where("order_number = ?", query.OrderNumber)
	}
	if query.Direction != "" {
		dbQuery = dbQuery.Where("direction = ?", string(query.Direction))
	}
	if query.FinalizationCode != "" {
		dbQuery = dbQuery.Where("finalization_code = ?", query.FinalizationCode)
	}
	if !query.Since.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.Since)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transaction records: %w", err)
	}

	records := make([]*payment.TransactionRecord, len(modelList))
	for i, model := range modelList {
		records[i] = model.ToDomain()
	}

	return records, nil
}

func (r *gormTransactionRepository) GetByID(ctx context.Context, recordID string) (*payment.TransactionRecord, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).Where("id = ?", recordID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", payment.ErrTransactionNotFound, recordID)
		}
		return nil, fmt.Errorf("failed to fetch transaction record: %w", err)
	}
	return model.ToDomain(), nil
}
