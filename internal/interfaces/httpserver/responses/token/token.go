// Package tokenres contains HTTP response DTOs for the token endpoint.
package tokenres

import (
	"livekit-token-service/internal/domain/dispatch"
	domaintoken "livekit-token-service/internal/domain/token"
)

// TokenResponse is the body of a successful POST /token.
//
// AgentDispatched is "automatic" when LiveKit dispatches the agent on join,
// true or false after an explicit dispatch call, and absent when the call
// runs in the background.
type TokenResponse struct {
	Token           string `json:"token"`
	WsURL           string `json:"wsUrl" example:"wss://voice.example.livekit.cloud"`
	Identity        string `json:"identity" example:"alice"`
	Room            string `json:"room" example:"demo"`
	ExpiresAt       int64  `json:"expiresAt" example:"1772370000"`
	AgentDispatched any    `json:"agentDispatched,omitempty" swaggertype:"string" example:"automatic"`
}

// NewTokenResponse creates a TokenResponse from the domain result.
func NewTokenResponse(result *domaintoken.Result) *TokenResponse {
	return &TokenResponse{
		Token:           result.Grant.Token,
		WsURL:           result.WsURL,
		Identity:        result.Grant.Identity,
		Room:            result.Grant.Room,
		ExpiresAt:       result.Grant.ExpiresAt.Unix(),
		AgentDispatched: agentDispatched(result.AgentDispatch),
	}
}

func agentDispatched(report dispatch.Report) any {
	switch report {
	case dispatch.ReportAutomatic:
		return string(dispatch.ReportAutomatic)
	case dispatch.ReportDispatched:
		return true
	case dispatch.ReportFailed:
		return false
	default:
		return nil
	}
}
