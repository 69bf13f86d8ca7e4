package payment

import (
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/pkg/validators"
)

// RequestMessage holds the merchant-supplied fields of a BOReq message.
// The Date/Time field is not part of the model: it is taken from the clock when the message is encoded.
type RequestMessage struct {
	TransactionType TransactionType
	Amount          int64  `validate:"gte=0,lte=999999999999"`
	TerminalID      string `validate:"required,max=8,printascii"`
	OrderNumber     string `validate:"max=15,printascii"`
	Description     string `validate:"max=125,printascii"`
	Language        string `validate:"required,oneofci=BG EN"`
	Currency        string `validate:"required,oneofci=BGN EUR USD"`
}

var requestMaxLengths = map[string]int{
	"TerminalID":  TerminalIDWidth,
	"OrderNumber": OrderNumberWidth,
	"Description": DescriptionWidth,
	"Language":    LanguageWidth,
	"Currency":    CurrencyWidth,
}

// Validate checks every field of the request. Failures are *validators.ValidationError.
func (r *RequestMessage) Validate() error {
	if err := validators.ValidateStruct(r, requestMaxLengths); err != nil {
		return err
	}
	if !r.TransactionType.Known() {
		return &validators.ValidationError{
			Field:     "TransactionType",
			MaxLength: TransactionTypeWidth,
			Rule:      validators.RuleAllowedValues,
		}
	}
	return nil
}

// ResponseMessage holds a decoded BOResp message.
type ResponseMessage struct {
	TransactionType     TransactionType
	TransactionTime     time.Time
	Amount              int64  `validate:"gte=0,lte=999999999999"`
	TerminalID          string `validate:"required,max=8,printascii"`
	OrderNumber         string `validate:"max=15,printascii"`
	FinalizationCode    string `validate:"len=2,digits"`
	FinalizationMessage string
	ProtocolVersion     string
}

var responseMaxLengths = map[string]int{
	"TerminalID":       TerminalIDWidth,
	"OrderNumber":      OrderNumberWidth,
	"FinalizationCode": FinalizationCodeWidth,
}

// Validate checks the fields that are put on the wire.
func (r *ResponseMessage) Validate() error {
	if err := validators.ValidateStruct(r, responseMaxLengths); err != nil {
		return err
	}
	if r.TransactionType < 0 || r.TransactionType > 99 {
		return &validators.ValidationError{
			Field:     "TransactionType",
			MaxLength: TransactionTypeWidth,
			Rule:      validators.RuleRange,
		}
	}
	return nil
}

// Succeeded reports whether the gateway finalized the transaction normally.
func (r *ResponseMessage) Succeeded() bool {
	return r.FinalizationCode == FinalizationSuccess
}

// SignedEnvelope is a plaintext message together with its appended signature.
type SignedEnvelope struct {
	Plaintext []byte
	Signature []byte
}
