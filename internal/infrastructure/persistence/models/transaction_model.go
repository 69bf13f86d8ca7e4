package models

import (
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
)

// TransactionModel is the GORM database model for journal entries (infrastructure concern)
type TransactionModel struct {
	ID                  string    `gorm:"primaryKey;type:uuid"`
	Direction           string    `gorm:"not null;index;type:varchar(16)"`
	TransactionType     int       `gorm:"not null"`
	TerminalID          string    `gorm:"not null;type:varchar(8)"`
	OrderNumber         string    `gorm:"not null;index;type:varchar(15)"`
	Amount              int64     `gorm:"not null"`
	Currency            string    `gorm:"type:varchar(3)"`
	FinalizationCode    string    `gorm:"index;type:varchar(2)"`
	FinalizationMessage string    `gorm:"type:varchar(255)"`
	TransactionTime     time.Time `gorm:"not null"`
	DateTimeCreated     time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts GORM model to domain entity
func (m *TransactionModel) ToDomain() *payment.TransactionRecord {
	return &payment.TransactionRecord{
		ID:                  m.ID,
		Direction:           payment.Direction(m.Direction),
		TransactionType:     payment.TransactionType(m.TransactionType),
		TerminalID:          m.TerminalID,
		OrderNumber:         m.OrderNumber,
		Amount:              m.Amount,
		Currency:            m.Currency,
		FinalizationCode:    m.FinalizationCode,
		FinalizationMessage: m.FinalizationMessage,
		TransactionTime:     m.TransactionTime,
		DateTimeCreated:     m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TransactionModel) FromDomain(r *payment.TransactionRecord) {
	m.ID = r.ID
	m.Direction = string(r.Direction)
	m.TransactionType = int(r.TransactionType)
	m.TerminalID = r.TerminalID
	m.OrderNumber = r.OrderNumber
	m.Amount = r.Amount
	m.Currency = r.Currency
	m.FinalizationCode = r.FinalizationCode
	m.FinalizationMessage = r.FinalizationMessage
	m.TransactionTime = r.TransactionTime
	m.DateTimeCreated = r.DateTimeCreated
}
