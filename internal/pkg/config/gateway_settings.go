package config

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/borica-gateway/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

const terminalIDMaxLength = 8

// GatewaySettings identifies the merchant terminal and the key files used to talk to the gateway.
type GatewaySettings struct {
	// TerminalID is the virtual POS identifier assigned by the bank.
	TerminalID string `mapstructure:"terminal_id" validate:"required,max=8"`
	// PrivateKeyPath points at the merchant's PKCS#1 "RSA PRIVATE KEY" PEM file.
	PrivateKeyPath string `mapstructure:"private_key_path" validate:"required"`
	// PublicKeyPath points at the gateway's "PUBLIC KEY" or "CERTIFICATE" PEM file.
	PublicKeyPath string `mapstructure:"public_key_path" validate:"required"`
	// GatewayURL, when set, is used to build browser redirect URLs.
	GatewayURL string `mapstructure:"gateway_url" validate:"omitempty,url"`
	// Timezone of the Date/Time fields; defaults to the local zone.
	Timezone string `mapstructure:"timezone"`
}

// Validate checks that all fields in GatewaySettings are valid
func (s *GatewaySettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for GatewaySettings: %w", err)
	}
	if err := validators.ValidateString("TerminalID", s.TerminalID, terminalIDMaxLength); err != nil {
		return fmt.Errorf("validation failed for GatewaySettings: %w", err)
	}
	if _, err := s.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone, falling back to time.Local.
func (s *GatewaySettings) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}
