package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"livekit-token-service/internal/infrastructure/auth"
	"livekit-token-service/internal/interfaces/httpserver/handlers"
	"livekit-token-service/internal/interfaces/httpserver/middlewares"
	tokenreq "livekit-token-service/internal/interfaces/httpserver/requests/token"
	tokenres "livekit-token-service/internal/interfaces/httpserver/responses/token"
	"livekit-token-service/internal/utils/platformerrors"
)

// TokenPath is the canonical token endpoint.
const TokenPath = "/token"

// RegisterTokenRoutes registers the token endpoint.
func RegisterTokenRoutes(router gin.IRoutes, handler *handlers.TokenHandler, authMiddleware gin.HandlerFunc) {
	chain := []gin.HandlerFunc{middlewares.NoStore()}
	if authMiddleware != nil {
		chain = append(chain, authMiddleware)
	}
	chain = append(chain, createToken(handler))

	router.POST(TokenPath, chain...)
}

// createToken godoc
// @Summary      Issue a LiveKit room token
// @Description  Returns a one-hour LiveKit access token for the given identity and room.
// @Description  Omitted fields are generated; an empty string is rejected. A missing or
// @Description  malformed body is treated as {}. When explicit agent dispatch is enabled
// @Description  the outcome is reported in agentDispatched but never fails the request.
// @Tags         Token API
// @Accept       json
// @Produce      json
// @Param        request body tokenreq.CreateTokenRequest false "Identity and room"
// @Success      200 {object} tokenres.TokenResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Router       /token [post]
func createToken(handler *handlers.TokenHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := tokenreq.Decode(c.Writer, c.Request)

		result, err := handler.CreateToken(c.Request.Context(), req.ToDomain(), auth.Principal(c))
		if err != nil {
			platformerrors.WriteError(c, err, handler.Log())
			return
		}

		c.JSON(http.StatusOK, tokenres.NewTokenResponse(result))
	}
}
