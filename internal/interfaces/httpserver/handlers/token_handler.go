package handlers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"livekit-token-service/internal/domain/token"
	"livekit-token-service/internal/infrastructure/metrics"
	"livekit-token-service/internal/utils/platformerrors"
)

// TokenHandler handles token-related HTTP requests.
type TokenHandler struct {
	service token.Service
	log     zerolog.Logger
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(service token.Service, log zerolog.Logger) *TokenHandler {
	return &TokenHandler{
		service: service,
		log:     log.With().Str("component", "token-handler").Logger(),
	}
}

// Log returns the handler's logger for writing error responses.
func (h *TokenHandler) Log() zerolog.Logger {
	return h.log
}

// CreateToken issues a room token and records the outcome.
func (h *TokenHandler) CreateToken(ctx context.Context, req *token.CreateTokenRequest, principal string) (*token.Result, error) {
	start := time.Now()

	result, err := h.service.CreateToken(ctx, req, principal)
	if err != nil {
		reason := "internal"
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
			reason = "validation"
		}
		metrics.RecordTokenFailure(reason)
		return nil, err
	}

	metrics.RecordTokenIssued(time.Since(start).Seconds())
	if result.RoomGenerated {
		metrics.RoomsGenerated.Inc()
	}
	return result, nil
}
