package token

import (
	"context"
	"time"

	"livekit-token-service/internal/domain/dispatch"
)

const (
	// AccessTokenTTL is the lifetime of every participant token.
	AccessTokenTTL = time.Hour
	// IdentityPrefix prefixes generated participant identities.
	IdentityPrefix = "user"
	// ErrMsgIdentityAndRoomRequired is returned verbatim to callers.
	ErrMsgIdentityAndRoomRequired = "identity and room are required"
)

// CreateTokenRequest carries the caller's optional identity and room. A nil
// field was omitted and gets a server default; a non-nil field is used as is.
type CreateTokenRequest struct {
	Identity *string
	Room     *string
}

// Grant is a signed participant token and the claims it was minted with.
type Grant struct {
	Token     string
	Identity  string
	Room      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Result is everything the token endpoint returns to the caller.
type Result struct {
	Grant             *Grant
	WsURL             string
	IdentityGenerated bool
	RoomGenerated     bool
	AgentDispatch     dispatch.Report
}

// Signer signs participant access tokens.
type Signer interface {
	SignAccess(identity, room string, issuedAt time.Time, ttl time.Duration) (string, error)
}

// RoomResolver turns an optional room into a concrete room name.
type RoomResolver interface {
	Resolve(ctx context.Context, requested string) string
}

// AgentNotifier asks for an agent to join a room when explicit dispatch is on.
type AgentNotifier interface {
	Trigger(ctx context.Context, room, identity string) dispatch.Report
}
