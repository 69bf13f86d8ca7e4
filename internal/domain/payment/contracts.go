package payment

import (
	"context"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
)

// MessageCodec converts between messages and their fixed-width, signed, transport-encoded form.
type MessageCodec interface {
	// EncodeRequest validates the request and serializes it to the 184-character BOReq layout,
	// stamping it with the current time.
	EncodeRequest(request *RequestMessage) (string, error)

	// EncodeResponse serializes a response to the 56-byte BOResp layout.
	EncodeResponse(response *ResponseMessage) ([]byte, error)

	// DecodeResponse parses a 56-byte BOResp plaintext.
	DecodeResponse(plaintext []byte) (*ResponseMessage, error)

	// Frame signs plaintext, appends the signature, then Base64- and percent-encodes the result.
	Frame(plaintext []byte, privateKey *cryptoalg.KeyMaterialPrivate) (string, error)

	// Unframe reverses Frame for a response: 56 bytes of plaintext followed by 128 bytes of signature.
	Unframe(encoded string) (*SignedEnvelope, error)

	// UnframeRequest reverses Frame for a request: 184 bytes of plaintext followed by 128 bytes of signature.
	UnframeRequest(encoded string) (*SignedEnvelope, error)
}

// GatewayService is the merchant-side entry point of the adapter.
type GatewayService interface {
	// BuildRequestParameter returns the value of the eBorica request parameter for the given request.
	BuildRequestParameter(ctx context.Context, request *RequestMessage) (string, error)

	// ParseResponse verifies and decodes the eBorica parameter returned by the gateway.
	ParseResponse(ctx context.Context, eBorica string) (*ResponseMessage, error)
}

// TransactionRepository stores the transaction journal.
type TransactionRepository interface {
	Create(ctx context.Context, record *TransactionRecord) error
	List(ctx context.Context, query *TransactionQuery) ([]*TransactionRecord, error)
	GetByID(ctx context.Context, recordID string) (*TransactionRecord, error)
}

// GatewaySimulator plays the gateway's side of the protocol. It is used by tooling and tests only.
type GatewaySimulator interface {
	// SimulateResponse encodes, signs and frames a response the way the gateway would.
	SimulateResponse(ctx context.Context, response *ResponseMessage, gatewayKey *cryptoalg.KeyMaterialPrivate) (string, error)

	// VerifyRequest unframes a request parameter, checks its signature against the merchant's
	// public key and returns the 184-character plaintext.
	VerifyRequest(ctx context.Context, eBorica string, merchantKey *cryptoalg.KeyMaterialPublic) (string, error)
}

// TransactionMetadataService exposes the transaction journal.
type TransactionMetadataService interface {
	List(ctx context.Context, query *TransactionQuery) ([]*TransactionRecord, error)
	GetByID(ctx context.Context, recordID string) (*TransactionRecord, error)
}
