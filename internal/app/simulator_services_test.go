//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/borica-gateway/internal/domain/cryptoalg"
	"github.com/MGTheTrain/borica-gateway/internal/domain/payment"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGatewaySimulator_SimulateResponse(t *testing.T) {
	f := setupGatewayService(t)

	response := sampleResponse("94")
	eBorica, err := f.simulator.SimulateResponse(context.Background(), response, f.gateway.private)
	require.NoError(t, err)
	assert.NotEmpty(t, eBorica)

	_, err = f.simulator.SimulateResponse(context.Background(), sampleResponse("A1"), f.gateway.private)
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = f.simulator.SimulateResponse(context.Background(), response, nil)
	assert.ErrorIs(t, err, cryptoalg.ErrSigning)
}

func TestGatewaySimulator_VerifyRequest(t *testing.T) {
	f := setupGatewayService(t)
	f.keyStore.On("PrivateKey").Return(f.merchant.private, nil)
	f.journal.On("Create", mock.Anything, mock.Anything).Return(nil)

	eBorica, err := f.service.BuildRequestParameter(context.Background(), sampleRequest())
	require.NoError(t, err)

	_, err = f.simulator.VerifyRequest(context.Background(), eBorica, f.gateway.public)
	assert.Equal(t, payment.ErrVerificationFailed, err)

	// A response-sized payload is too short for a request.
	responseParam, err := f.simulator.SimulateResponse(context.Background(), sampleResponse("00"), f.gateway.private)
	require.NoError(t, err)
	_, err = f.simulator.VerifyRequest(context.Background(), responseParam, f.gateway.public)
	assert.ErrorIs(t, err, payment.ErrFraming)
}
