package handlers

import (
	"github.com/rs/zerolog"

	"livekit-token-service/internal/domain/token"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Token *TokenHandler
}

// NewProvider creates a new handler provider.
func NewProvider(tokenService token.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Token: NewTokenHandler(tokenService, log),
	}
}
