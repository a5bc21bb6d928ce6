package token

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"livekit-token-service/internal/domain/dispatch"
	"livekit-token-service/internal/utils/idgen"
)

// Service defines the token endpoint's business operation.
type Service interface {
	CreateToken(ctx context.Context, req *CreateTokenRequest, principal string) (*Result, error)
}

type service struct {
	issuer   *Issuer
	resolver RoomResolver
	notifier AgentNotifier
	wsURL    string
	log      zerolog.Logger
}

// NewService creates a new token service.
func NewService(issuer *Issuer, resolver RoomResolver, notifier AgentNotifier, wsURL string, log zerolog.Logger) Service {
	return &service{
		issuer:   issuer,
		resolver: resolver,
		notifier: notifier,
		wsURL:    wsURL,
		log:      log.With().Str("component", "token-service").Logger(),
	}
}

// CreateToken applies defaults, resolves the room, issues the token and then
// runs agent dispatch. Dispatch never turns a successful issue into an error.
// principal is the authenticated subject, if any, and is the preferred
// default identity.
func (s *service) CreateToken(ctx context.Context, req *CreateTokenRequest, principal string) (*Result, error) {
	if req == nil {
		req = &CreateTokenRequest{}
	}

	result := &Result{WsURL: s.wsURL}

	var identity string
	switch {
	case req.Identity != nil:
		identity = *req.Identity
	case principal != "":
		identity = principal
	default:
		identity = s.generateIdentity()
		result.IdentityGenerated = true
	}

	var room string
	if req.Room != nil {
		room = *req.Room
	} else {
		room = s.resolver.Resolve(ctx, "")
		result.RoomGenerated = true
	}

	grant, err := s.issuer.Issue(ctx, identity, room)
	if err != nil {
		return nil, err
	}
	result.Grant = grant

	result.AgentDispatch = s.notifier.Trigger(ctx, grant.Room, grant.Identity)

	s.log.Info().
		Str("identity", grant.Identity).
		Str("room", grant.Room).
		Bool("room_generated", result.RoomGenerated).
		Time("expires_at", grant.ExpiresAt).
		Str("agent_dispatch", string(result.AgentDispatch)).
		Msg("token issued")

	return result, nil
}

func (s *service) generateIdentity() string {
	id, err := idgen.GenerateHexID(IdentityPrefix, 12)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to generate identity, using timestamp")
		return fmt.Sprintf("%s-%d", IdentityPrefix, time.Now().UnixNano())
	}
	return id
}

var _ AgentNotifier = (*dispatch.Notifier)(nil)
