package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/config"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/logger"

	"github.com/google/uuid"
)

// gatewayService implements the GatewayService interface for the merchant side of the protocol
type gatewayService struct {
	codec    payment.MessageCodec
	signer   cryptoalg.RSASigner
	keyStore cryptoalg.KeyStore
	journal  payment.TransactionRepository
	settings *config.GatewaySettings
	logger   logger.Logger
	now      func() time.Time
}

// NewGatewayService creates a new gatewayService instance. journal may be nil, in which case nothing is recorded.
func NewGatewayService(
	codec payment.MessageCodec,
	signer cryptoalg.RSASigner,
	keyStore cryptoalg.KeyStore,
	journal payment.TransactionRepository,
	settings *config.GatewaySettings,
	logger logger.Logger,
) (payment.GatewayService, error) {
	if codec == nil || signer == nil || keyStore == nil {
		return nil, fmt.Errorf("codec, signer and key store are required")
	}
	if settings == nil {
		settings = &config.GatewaySettings{}
	}
	return &gatewayService{
		codec:    codec,
		signer:   signer,
		keyStore: keyStore,
		journal:  journal,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// BuildRequestParameter encodes, signs and frames a request. An empty TerminalID is taken from the settings.
func (s *gatewayService) BuildRequestParameter(ctx context.Context, request *payment.RequestMessage) (string, error) {
	if request != nil && request.TerminalID == "" {
		filled := *request
		filled.TerminalID = s.settings.TerminalID
		request = &filled
	}

	plaintext, err := s.codec.EncodeRequest(request)
	if err != nil {
		return "", err
	}

	privateKey, err := s.keyStore.PrivateKey()
	if err != nil {
		return "", fmt.Errorf("failed to load merchant private key: %w", err)
	}

	eBorica, err := s.codec.Frame([]byte(plaintext), privateKey)
	if err != nil {
		return "", err
	}

	s.logger.Info("Built ", request.TransactionType, " request for order ", request.OrderNumber)
	s.record(ctx, &payment.TransactionRecord{
		Direction:       payment.DirectionRequest,
		TransactionType: request.TransactionType,
		TerminalID:      request.TerminalID,
		OrderNumber:     request.OrderNumber,
		Amount:          request.Amount,
		Currency:        strings.ToUpper(request.Currency),
		TransactionTime: s.now(),
	})

	return eBorica, nil
}

// ParseResponse verifies the gateway signature before decoding the response.
func (s *gatewayService) ParseResponse(ctx context.Context, eBorica string) (*payment.ResponseMessage, error) {
	envelope, err := s.codec.Unframe(eBorica)
	if err != nil {
		return nil, err
	}

	publicKey, err := s.keyStore.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load gateway public key: %w", err)
	}

	if !s.signer.Verify(envelope.Plaintext, envelope.Signature, publicKey) {
		return nil, payment.ErrVerificationFailed
	}

	response, err := s.codec.DecodeResponse(envelope.Plaintext)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Received response for order ", response.OrderNumber, " with finalization code ", response.FinalizationCode)
	s.record(ctx, &payment.TransactionRecord{
		Direction:           payment.DirectionResponse,
		TransactionType:     response.TransactionType,
		TerminalID:          response.TerminalID,
		OrderNumber:         response.OrderNumber,
		Amount:              response.Amount,
		FinalizationCode:    response.FinalizationCode,
		FinalizationMessage: response.FinalizationMessage,
		TransactionTime:     response.TransactionTime,
	})

	return response, nil
}

// record journals a transaction. Journal failures never fail the payment operation.
func (s *gatewayService) record(ctx context.Context, record *payment.TransactionRecord) {
	if s.journal == nil {
		return
	}
	record.ID = uuid.NewString()
	record.DateTimeCreated = s.now()
	if err := s.journal.Create(ctx, record); err != nil {
		s.logger.Error("Failed to record ", record.Direction, " for order ", record.OrderNumber, ": ", err)
	}
}

// RedirectURL appends the eBorica parameter to the gateway URL. eBorica must already be percent-encoded.
func RedirectURL(gatewayURL, eBorica string) (string, error) {
	u, err := url.Parse(gatewayURL)
	if err != nil {
		return "", fmt.Errorf("invalid gateway url: %w", err)
	}
	if u.RawQuery != "" {
		u.RawQuery += "&"
	}
	u.RawQuery += "eBorica=" + eBorica
	return u.String(), nil
}
