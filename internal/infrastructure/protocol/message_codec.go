package protocol

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/logger"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/validators"
)

// Offsets into the BOResp plaintext
const (
	respTransactionTypeEnd  = payment.TransactionTypeWidth
	respDateTimeEnd         = respTransactionTypeEnd + payment.DateTimeWidth
	respAmountEnd           = respDateTimeEnd + payment.AmountWidth
	respTerminalIDEnd       = respAmountEnd + payment.TerminalIDWidth
	respOrderNumberEnd      = respTerminalIDEnd + payment.OrderNumberWidth
	respFinalizationCodeEnd = respOrderNumberEnd + payment.FinalizationCodeWidth
)

// Option configures a message codec.
type Option func(*messageCodec)

// WithClock replaces the clock used to stamp outgoing requests.
func WithClock(now func() time.Time) Option {
	return func(c *messageCodec) {
		c.now = now
	}
}

// WithLocation sets the time zone of the Date/Time field. The default is time.Local.
func WithLocation(location *time.Location) Option {
	return func(c *messageCodec) {
		c.location = location
	}
}

// messageCodec implements payment.MessageCodec
type messageCodec struct {
	signer   cryptoalg.RSASigner
	logger   logger.Logger
	now      func() time.Time
	location *time.Location
}

// NewMessageCodec creates a codec that signs framed messages with signer.
func NewMessageCodec(signer cryptoalg.RSASigner, logger logger.Logger, opts ...Option) (payment.MessageCodec, error) {
	if signer == nil {
		return nil, fmt.Errorf("signer cannot be nil")
	}

	c := &messageCodec{
		signer:   signer,
		logger:   logger,
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.now == nil || c.location == nil {
		return nil, fmt.Errorf("clock and location cannot be nil")
	}
	return c, nil
}

// EncodeRequest validates the request and lays it out as a 184-character BOReq string.
func (c *messageCodec) EncodeRequest(request *payment.RequestMessage) (string, error) {
	if err := request.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(payment.RequestLength)

	fmt.Fprintf(&b, "%02d", int(request.TransactionType))
	b.WriteString(c.now().In(c.location).Format(payment.DateTimeLayout))
	fmt.Fprintf(&b, "%012d", request.Amount)
	b.WriteString(padRight(request.TerminalID, payment.TerminalIDWidth))
	b.WriteString(padRight(request.OrderNumber, payment.OrderNumberWidth))
	b.WriteString(padRight(request.Description, payment.DescriptionWidth))
	b.WriteString(strings.ToUpper(request.Language))
	b.WriteString(payment.ProtocolVersion)
	b.WriteString(strings.ToUpper(request.Currency))

	encoded := b.String()
	if len(encoded) != payment.RequestLength {
		return "", fmt.Errorf("%w: encoded request has %d bytes, expected %d", payment.ErrFormat, len(encoded), payment.RequestLength)
	}

	c.logger.Debug("Encoded request for order ", request.OrderNumber)
	return encoded, nil
}

// EncodeResponse lays a response out as a 56-byte BOResp plaintext.
// A zero TransactionTime is replaced by the current time.
func (c *messageCodec) EncodeResponse(response *payment.ResponseMessage) ([]byte, error) {
	if err := response.Validate(); err != nil {
		return nil, err
	}

	transactionTime := response.TransactionTime
	if transactionTime.IsZero() {
		transactionTime = c.now()
	}

	var b strings.Builder
	b.Grow(payment.ResponseLength)

	fmt.Fprintf(&b, "%02d", int(response.TransactionType))
	b.WriteString(transactionTime.In(c.location).Format(payment.DateTimeLayout))
	fmt.Fprintf(&b, "%012d", response.Amount)
	b.WriteString(padRight(response.TerminalID, payment.TerminalIDWidth))
	b.WriteString(padRight(response.OrderNumber, payment.OrderNumberWidth))
	b.WriteString(response.FinalizationCode)
	b.WriteString(payment.ProtocolVersion)

	if b.Len() != payment.ResponseLength {
		return nil, fmt.Errorf("%w: encoded response has %d bytes, expected %d", payment.ErrFormat, b.Len(), payment.ResponseLength)
	}
	return []byte(b.String()), nil
}

// DecodeResponse parses a BOResp plaintext. Nothing is returned unless every field parses.
func (c *messageCodec) DecodeResponse(plaintext []byte) (*payment.ResponseMessage, error) {
	if len(plaintext) != payment.ResponseLength {
		return nil, fmt.Errorf("%w: response has %d bytes, expected %d", payment.ErrFormat, len(plaintext), payment.ResponseLength)
	}
	s := string(plaintext)

	transactionType, err := parseDigits("TransactionType", s[:respTransactionTypeEnd])
	if err != nil {
		return nil, err
	}

	rawTime := s[respTransactionTypeEnd:respDateTimeEnd]
	if !validators.IsDigits(rawTime) {
		return nil, fmt.Errorf("%w: Date/Time %q is not numeric", payment.ErrFormat, rawTime)
	}
	transactionTime, err := time.ParseInLocation(payment.DateTimeLayout, rawTime, c.location)
	if err != nil {
		return nil, fmt.Errorf("%w: Date/Time %q: %w", payment.ErrFormat, rawTime, err)
	}

	amount, err := parseDigits("Amount", s[respDateTimeEnd:respAmountEnd])
	if err != nil {
		return nil, err
	}

	finalizationCode := s[respOrderNumberEnd:respFinalizationCodeEnd]
	if !validators.IsDigits(finalizationCode) {
		return nil, fmt.Errorf("%w: finalization code %q is not two decimal digits", payment.ErrFormat, finalizationCode)
	}

	response := &payment.ResponseMessage{
		TransactionType:     payment.TransactionType(transactionType),
		TransactionTime:     transactionTime,
		Amount:              amount,
		TerminalID:          s[respAmountEnd:respTerminalIDEnd],
		OrderNumber:         strings.TrimRight(s[respTerminalIDEnd:respOrderNumberEnd], " "),
		FinalizationCode:    finalizationCode,
		FinalizationMessage: payment.FinalizationMessage(finalizationCode),
		ProtocolVersion:     s[respFinalizationCodeEnd:],
	}

	c.logger.Debug("Decoded response for order ", response.OrderNumber, " with finalization code ", finalizationCode)
	return response, nil
}

// Frame signs plaintext, appends the signature and encodes the result for URL transport.
func (c *messageCodec) Frame(plaintext []byte, privateKey *cryptoalg.KeyMaterialPrivate) (string, error) {
	signature, err := c.signer.Sign(plaintext, privateKey)
	if err != nil {
		return "", err
	}

	buf := make([]byte, 0, len(plaintext)+len(signature))
	buf = append(buf, plaintext...)
	buf = append(buf, signature...)

	return url.QueryEscape(base64.StdEncoding.EncodeToString(buf)), nil
}

// Unframe splits a framed response into its 56-byte plaintext and 128-byte signature.
func (c *messageCodec) Unframe(encoded string) (*payment.SignedEnvelope, error) {
	return unframe(encoded, payment.ResponseLength)
}

// UnframeRequest splits a framed request into its 184-byte plaintext and 128-byte signature.
func (c *messageCodec) UnframeRequest(encoded string) (*payment.SignedEnvelope, error) {
	return unframe(encoded, payment.RequestLength)
}

func unframe(encoded string, plaintextLength int) (*payment.SignedEnvelope, error) {
	unescaped, err := url.QueryUnescape(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: percent-decoding: %w", payment.ErrFraming, err)
	}
	// A value decoded once already by the HTTP layer turns '+' into ' ' on the second pass.
	unescaped = strings.ReplaceAll(unescaped, " ", "+")

	buf, err := base64.StdEncoding.DecodeString(unescaped)
	if err != nil {
		return nil, fmt.Errorf("%w: base64-decoding: %w", payment.ErrFraming, err)
	}

	total := plaintextLength + payment.SignatureLength
	if len(buf) < total {
		return nil, fmt.Errorf("%w: decoded payload has %d bytes, expected at least %d", payment.ErrFraming, len(buf), total)
	}

	return &payment.SignedEnvelope{
		Plaintext: append([]byte(nil), buf[:plaintextLength]...),
		Signature: append([]byte(nil), buf[plaintextLength:total]...),
	}, nil
}

func parseDigits(field, value string) (int64, error) {
	if !validators.IsDigits(value) {
		return 0, fmt.Errorf("%w: %s %q is not numeric", payment.ErrFormat, field, value)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", payment.ErrFormat, field, value, err)
	}
	return n, nil
}

func padRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
