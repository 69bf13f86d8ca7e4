package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Direction tells whether a journal entry records an outgoing request or an incoming response.
type Direction string

// Journal directions
const (
	DirectionRequest  Direction = "request"
	DirectionResponse Direction = "response"
)

// TransactionRecord is a journal entry for a request sent to or a response received from the gateway.
type TransactionRecord struct {
	ID                  string          `validate:"required,uuid4"`
	Direction           Direction       `validate:"required,oneof=request response"`
	TransactionType     TransactionType `validate:"gte=0,lte=99"`
	TerminalID          string          `validate:"max=8"`
	OrderNumber         string          `validate:"max=15"`
	Amount              int64           `validate:"gte=0"`
	Currency            string          `validate:"omitempty,len=3"`
	FinalizationCode    string          `validate:"omitempty,len=2,digits"`
	FinalizationMessage string
	TransactionTime     time.Time `validate:"required"`
	DateTimeCreated     time.Time `validate:"required"`
}

// Validate for validating TransactionRecord struct
func (r *TransactionRecord) Validate() error {
	return validateWithMessages(r)
}

// TransactionQuery filters journal listings.
type TransactionQuery struct {
	OrderNumber      string    `validate:"omitempty,max=15"`
	Direction        Direction `validate:"omitempty,oneof=request response"`
	FinalizationCode string    `validate:"omitempty,len=2,digits"`
	Since            time.Time

	Limit  int `validate:"omitempty,gt=0"`
	Offset int `validate:"omitempty,gte=0"`

	SortBy    string `validate:"omitempty,oneof=transaction_time date_time_created order_number"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewTransactionQuery returns a query that lists the newest entries first.
func NewTransactionQuery() *TransactionQuery {
	return &TransactionQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating TransactionQuery struct
func (q *TransactionQuery) Validate() error {
	return validateWithMessages(q)
}

func validateWithMessages(s interface{}) error {
	err := validators.Validator().Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
