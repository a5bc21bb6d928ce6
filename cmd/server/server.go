// @title           LiveKit Token Service
// @version         1.0
// @description     Issues short-lived LiveKit room tokens for the embeddable voice widget.
// @description     Optionally asks the agent orchestrator to dispatch a voice agent into the room.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token from Keycloak (only when AUTH_ENABLED=true)

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"livekit-token-service/internal/config"
	"livekit-token-service/internal/domain"
	"livekit-token-service/internal/domain/dispatch"
	"livekit-token-service/internal/domain/room"
	"livekit-token-service/internal/infrastructure/auth"
	infradispatch "livekit-token-service/internal/infrastructure/dispatch"
	"livekit-token-service/internal/infrastructure/livekit"
	"livekit-token-service/internal/infrastructure/logger"
	"livekit-token-service/internal/infrastructure/observability"
	"livekit-token-service/internal/interfaces/httpserver"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	notifier   *dispatch.Notifier
	cfg        *config.Config
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, notifier *dispatch.Notifier, cfg *config.Config, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		notifier:   notifier,
		cfg:        cfg,
		log:        log,
	}
}

// Start runs the application until ctx is cancelled, then drains
// background dispatch calls.
func (a *Application) Start(ctx context.Context) error {
	err := a.httpServer.Run(ctx)

	drainCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if waitErr := a.notifier.Wait(drainCtx); waitErr != nil {
		a.log.Warn().Err(waitErr).Msg("background agent dispatch still running at shutdown")
	}

	return err
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ConfigurationError: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup observability
	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth validator")
	}

	signer := livekit.NewTokenSigner(cfg)

	dispatchClient, err := ProvideDispatchClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize agent dispatch client")
	}

	resolver := domain.ProvideRoomResolver(ProvideRoomDirectory(cfg), log)
	notifier := domain.ProvideDispatchNotifier(cfg, signer, dispatchClient, log)
	tokenService := domain.ProvideTokenService(cfg, signer, resolver, notifier, log)

	httpServer := httpserver.New(cfg, log, tokenService, authValidator)

	app := NewApplication(httpServer, notifier, cfg, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Bool("agent_dispatch", notifier.Enabled()).
		Bool("auth", cfg.AuthEnabled).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// ProvideRoomDirectory returns the LiveKit room directory when generated
// names should be checked against active rooms, and nil otherwise.
func ProvideRoomDirectory(cfg *config.Config) room.Directory {
	if !cfg.RoomUniquenessCheck {
		return nil
	}
	return livekit.NewRoomClient(cfg)
}

// ProvideDispatchClient returns the orchestrator client, or nil when
// LiveKit dispatches agents automatically.
func ProvideDispatchClient(cfg *config.Config) (dispatch.Client, error) {
	if !cfg.DispatchEnabled {
		return nil, nil
	}
	return infradispatch.NewClient(cfg)
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
