package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "livekit-token-service/docs/swagger"
	"livekit-token-service/internal/config"
	"livekit-token-service/internal/domain/token"
	"livekit-token-service/internal/infrastructure/auth"
	"livekit-token-service/internal/interfaces/httpserver/handlers"
	"livekit-token-service/internal/interfaces/httpserver/middlewares"
	"livekit-token-service/internal/interfaces/httpserver/responses"
	"livekit-token-service/internal/interfaces/httpserver/routes"
	"livekit-token-service/internal/utils/platformerrors"
)

// HTTPServer is the HTTP server for the token API.
type HTTPServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
}

// New creates a new HTTP server.
func New(
	cfg *config.Config,
	log zerolog.Logger,
	tokenService token.Service,
	authValidator *auth.Validator,
) *HTTPServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, platformerrors.HTTPErrorResponse{
			Error:     platformerrors.GenericInternalMessage,
			Type:      "internal_error",
			RequestID: middlewares.GetRequestID(c),
		})
	}))

	// Preflight requests stop at CORS; anything that must see them goes first.
	engine.Use(middlewares.RequestID())
	engine.Use(middlewares.RequestLogger(log))
	engine.Use(middlewares.Metrics())
	engine.Use(middlewares.AllowFraming())
	engine.Use(middlewares.CORS())
	engine.Use(middlewares.Tracing(cfg.ServiceName))

	registerCoreRoutes(engine, cfg)

	handlerProvider := handlers.NewProvider(tokenService, log)
	routes.NewProvider(handlerProvider, authValidator).Register(engine)

	engine.NoRoute(func(c *gin.Context) {
		platformerrors.WriteNotFound(c, "not found")
	})

	return &HTTPServer{
		cfg:    cfg,
		engine: engine,
		log:    log,
	}
}

// Handler exposes the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP server and blocks until context is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("HTTP server error")
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func registerCoreRoutes(engine *gin.Engine, cfg *config.Config) {
	engine.GET("/health", health(cfg.ServiceName))

	engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Prometheus metrics endpoint
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// health godoc
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200 {object} responses.HealthResponse
// @Router       /health [get]
func health(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, responses.HealthResponse{
			Status:    "ok",
			Service:   serviceName,
			Timestamp: time.Now().Unix(),
		})
	}
}
