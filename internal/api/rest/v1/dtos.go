package v1

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Message string `json:"message"`
}

// BuildRequest is the body of POST /requests. An omitted terminal_id is taken from the server configuration.
type BuildRequest struct {
	TransactionType int    `json:"transaction_type" validate:"required"`
	Amount          int64  `json:"amount" validate:"gte=0"`
	TerminalID      string `json:"terminal_id"`
	OrderNumber     string `json:"order_number"`
	Description     string `json:"description"`
	Language        string `json:"language" validate:"required"`
	Currency        string `json:"currency" validate:"required"`
}

// Validate checks that the required fields are present. Field contents are checked by the gateway service.
func (r *BuildRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		var messages []string
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// ToDomain converts the body to a request message.
func (r *BuildRequest) ToDomain() *payment.RequestMessage {
	return &payment.RequestMessage{
		TransactionType: payment.TransactionType(r.TransactionType),
		Amount:          r.Amount,
		TerminalID:      r.TerminalID,
		OrderNumber:     r.OrderNumber,
		Description:     r.Description,
		Language:        r.Language,
		Currency:        r.Currency,
	}
}

// BuildRequestResponse carries the signed eBorica parameter and, when a gateway URL is configured,
// the URL the customer's browser should be redirected to.
type BuildRequestResponse struct {
	EBorica     string `json:"eBorica"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// PaymentResponse is a verified and decoded gateway response.
type PaymentResponse struct {
	TransactionType     int       `json:"transaction_type"`
	TransactionTypeName string    `json:"transaction_type_name"`
	TransactionTime     time.Time `json:"transaction_time"`
	Amount              int64     `json:"amount"`
	TerminalID          string    `json:"terminal_id"`
	OrderNumber         string    `json:"order_number"`
	FinalizationCode    string    `json:"finalization_code"`
	FinalizationMessage string    `json:"finalization_message"`
	ProtocolVersion     string    `json:"protocol_version"`
	Succeeded           bool      `json:"succeeded"`
}

func newPaymentResponse(r *payment.ResponseMessage) PaymentResponse {
	return PaymentResponse{
		TransactionType:     int(r.TransactionType),
		TransactionTypeName: r.TransactionType.String(),
		TransactionTime:     r.TransactionTime,
		Amount:              r.Amount,
		TerminalID:          r.TerminalID,
		OrderNumber:         r.OrderNumber,
		FinalizationCode:    r.FinalizationCode,
		FinalizationMessage: r.FinalizationMessage,
		ProtocolVersion:     r.ProtocolVersion,
		Succeeded:           r.Succeeded(),
	}
}

// TransactionRecordResponse is a journal entry.
type TransactionRecordResponse struct {
	ID                  string    `json:"id"`
	Direction           string    `json:"direction"`
	TransactionType     int       `json:"transaction_type"`
	TerminalID          string    `json:"terminal_id"`
	OrderNumber         string    `json:"order_number"`
	Amount              int64     `json:"amount"`
	Currency            string    `json:"currency,omitempty"`
	FinalizationCode    string    `json:"finalization_code,omitempty"`
	FinalizationMessage string    `json:"finalization_message,omitempty"`
	TransactionTime     time.Time `json:"transaction_time"`
	DateTimeCreated     time.Time `json:"date_time_created"`
}

func newTransactionRecordResponse(r *payment.TransactionRecord) TransactionRecordResponse {
	return TransactionRecordResponse{
		ID:                  r.ID,
		Direction:           string(r.Direction),
		TransactionType:     int(r.TransactionType),
		TerminalID:          r.TerminalID,
		OrderNumber:         r.OrderNumber,
		Amount:              r.Amount,
		Currency:            r.Currency,
		FinalizationCode:    r.FinalizationCode,
		FinalizationMessage: r.FinalizationMessage,
		TransactionTime:     r.TransactionTime,
		DateTimeCreated:     r.DateTimeCreated,
	}
}
