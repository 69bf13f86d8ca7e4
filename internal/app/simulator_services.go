package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/logger"
)

// gatewaySimulator implements the GatewaySimulator interface
type gatewaySimulator struct {
	codec  payment.MessageCodec
	signer cryptoalg.RSASigner
	logger logger.Logger
}

// NewGatewaySimulator creates a new gatewaySimulator instance
func NewGatewaySimulator(codec payment.MessageCodec, signer cryptoalg.RSASigner, logger logger.Logger) (payment.GatewaySimulator, error) {
	if codec == nil || signer == nil {
		return nil, fmt.Errorf("codec and signer are required")
	}
	return &gatewaySimulator{
		codec:  codec,
		signer: signer,
		logger: logger,
	}, nil
}

// SimulateResponse produces the eBorica parameter the gateway would send back for response.
func (s *gatewaySimulator) SimulateResponse(_ context.Context, response *payment.ResponseMessage, gatewayKey *cryptoalg.KeyMaterialPrivate) (string, error) {
	plaintext, err := s.codec.EncodeResponse(response)
	if err != nil {
		return "", err
	}

	eBorica, err := s.codec.Frame(plaintext, gatewayKey)
	if err != nil {
		return "", err
	}

	s.logger.Info("Simulated response for order ", response.OrderNumber, " with finalization code ", response.FinalizationCode)
	return eBorica, nil
}

// VerifyRequest checks a request parameter the way the gateway would before accepting it.
func (s *gatewaySimulator) VerifyRequest(_ context.Context, eBorica string, merchantKey *cryptoalg.KeyMaterialPublic) (string, error) {
	envelope, err := s.codec.UnframeRequest(eBorica)
	if err != nil {
		return "", err
	}
	if !s.signer.Verify(envelope.Plaintext, envelope.Signature, merchantKey) {
		return "", payment.ErrVerificationFailed
	}
	return string(envelope.Plaintext), nil
}
