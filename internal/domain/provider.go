package domain

import (
	"time"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"livekit-token-service/internal/config"
	"livekit-token-service/internal/domain/dispatch"
	"livekit-token-service/internal/domain/room"
	"livekit-token-service/internal/domain/token"
)

// ProvideRoomResolver provides the room resolver. directory may be nil.
func ProvideRoomResolver(directory room.Directory, log zerolog.Logger) *room.Resolver {
	return room.NewResolver(directory, log)
}

// ProvideDispatchNotifier provides the agent dispatch notifier.
func ProvideDispatchNotifier(
	cfg *config.Config,
	signer dispatch.AdminTokenSigner,
	client dispatch.Client,
	log zerolog.Logger,
) *dispatch.Notifier {
	return dispatch.NewNotifier(
		dispatch.Options{
			Enabled:   cfg.DispatchEnabled,
			Await:     cfg.DispatchAwait,
			AgentName: cfg.AgentName,
			Timeout:   cfg.DispatchTimeout,
		},
		signer,
		client,
		time.Now,
		log,
	)
}

// ProvideTokenService provides the token service.
func ProvideTokenService(
	cfg *config.Config,
	signer token.Signer,
	resolver *room.Resolver,
	notifier *dispatch.Notifier,
	log zerolog.Logger,
) token.Service {
	issuer := token.NewIssuer(signer, time.Now, log)
	return token.NewService(issuer, resolver, notifier, cfg.LiveKitURL, log)
}

// ServiceProvider provides all domain services.
var ServiceProvider = wire.NewSet(
	ProvideRoomResolver,
	ProvideDispatchNotifier,
	ProvideTokenService,
)
