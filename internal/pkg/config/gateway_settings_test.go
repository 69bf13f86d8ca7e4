//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/pkg/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewaySettingsValidation(t *testing.T) {
	valid := func() *GatewaySettings {
		return &GatewaySettings{
			TerminalID:     "62160001",
			PrivateKeyPath: "/etc/borica/merchant.key",
			PublicKeyPath:  "/etc/borica/gateway.pem",
		}
	}

	t.Run("valid settings", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("terminal id too long", func(t *testing.T) {
		s := valid()
		s.TerminalID = "621600011"
		assert.Error(t, s.Validate())
	})

	t.Run("terminal id with control character", func(t *testing.T) {
		s := valid()
		s.TerminalID = "6216\t001"
		assert.ErrorIs(t, s.Validate(), validators.ErrValidation)
	})

	t.Run("missing key paths", func(t *testing.T) {
		s := valid()
		s.PrivateKeyPath = ""
		assert.Error(t, s.Validate())

		s = valid()
		s.PublicKeyPath = ""
		assert.Error(t, s.Validate())
	})

	t.Run("invalid gateway url", func(t *testing.T) {
		s := valid()
		s.GatewayURL = "not a url"
		assert.Error(t, s.Validate())
	})

	t.Run("invalid timezone", func(t *testing.T) {
		s := valid()
		s.Timezone = "Mars/Olympus_Mons"
		assert.Error(t, s.Validate())
	})
}

func TestGatewaySettingsLocation(t *testing.T) {
	s := &GatewaySettings{}
	loc, err := s.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	s.Timezone = "UTC"
	loc, err = s.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}
