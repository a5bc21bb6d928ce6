//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"livekit-token-service/internal/config"
	"livekit-token-service/internal/domain"
	"livekit-token-service/internal/domain/dispatch"
	"livekit-token-service/internal/domain/token"
	"livekit-token-service/internal/infrastructure/auth"
	"livekit-token-service/internal/infrastructure/livekit"
	"livekit-token-service/internal/interfaces/httpserver"
)

// ProviderSet is the wire provider set for the application.
var ProviderSet = wire.NewSet(
	// Infrastructure providers
	livekit.NewTokenSigner,
	wire.Bind(new(token.Signer), new(*livekit.TokenSigner)),
	wire.Bind(new(dispatch.AdminTokenSigner), new(*livekit.TokenSigner)),
	ProvideRoomDirectory,
	ProvideDispatchClient,
	ProvideAuthValidator,

	// Domain providers
	domain.ServiceProvider,

	// Interface providers
	httpserver.New,

	// Application
	NewApplication,
)

// ProvideAuthValidator provides an auth validator.
func ProvideAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}

// CreateApplication creates the application with all dependencies wired.
func CreateApplication(
	ctx context.Context,
	cfg *config.Config,
	log zerolog.Logger,
) (*Application, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
