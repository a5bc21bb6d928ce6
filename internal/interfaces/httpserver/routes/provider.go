package routes

import (
	"github.com/gin-gonic/gin"

	"livekit-token-service/internal/infrastructure/auth"
	"livekit-token-service/internal/interfaces/httpserver/handlers"
)

// Provider holds all route providers.
type Provider struct {
	handlers      *handlers.Provider
	authValidator *auth.Validator
}

// NewProvider creates a new route provider.
func NewProvider(handlerProvider *handlers.Provider, authValidator *auth.Validator) *Provider {
	return &Provider{
		handlers:      handlerProvider,
		authValidator: authValidator,
	}
}

// Register registers all API routes on the engine. Auth, when enabled,
// guards only the token endpoint.
func (p *Provider) Register(engine *gin.Engine) {
	var authMiddleware gin.HandlerFunc
	if p.authValidator != nil {
		authMiddleware = p.authValidator.Middleware()
	}
	RegisterTokenRoutes(engine, p.handlers.Token, authMiddleware)
}
