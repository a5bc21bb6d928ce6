package livekit

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/livekit/protocol/auth"

	"livekit-token-service/internal/config"
)

// AdminSubject is the subject of tokens used only to authenticate dispatch calls.
const AdminSubject = "admin"

// AccessClaims is the LiveKit claim set carried by every token this service signs.
type AccessClaims struct {
	Room  string           `json:"room,omitempty"`
	Video *auth.VideoGrant `json:"video"`
	jwt.RegisteredClaims
}

// TokenSigner signs LiveKit access tokens with the deployment's API secret.
type TokenSigner struct {
	apiKey    string
	apiSecret []byte
}

// NewTokenSigner creates a new token signer.
func NewTokenSigner(cfg *config.Config) *TokenSigner {
	return &TokenSigner{
		apiKey:    cfg.LiveKitAPIKey,
		apiSecret: []byte(cfg.LiveKitAPISecret),
	}
}

// SignAccess mints a participant token that can join, publish and subscribe in room.
func (s *TokenSigner) SignAccess(identity, room string, issuedAt time.Time, ttl time.Duration) (string, error) {
	canPublish := true
	canSubscribe := true

	grant := &auth.VideoGrant{
		Room:         room,
		RoomJoin:     true,
		CanPublish:   &canPublish,
		CanSubscribe: &canSubscribe,
	}

	return s.sign(identity, room, grant, issuedAt, ttl)
}

// SignAdmin mints a short-lived token carrying only roomAdmin for room.
func (s *TokenSigner) SignAdmin(room string, issuedAt time.Time, ttl time.Duration) (string, error) {
	grant := &auth.VideoGrant{
		RoomAdmin: true,
		Room:      room,
	}

	return s.sign(AdminSubject, "", grant, issuedAt, ttl)
}

func (s *TokenSigner) sign(subject, room string, grant *auth.VideoGrant, issuedAt time.Time, ttl time.Duration) (string, error) {
	if len(s.apiSecret) == 0 {
		return "", fmt.Errorf("livekit api secret is not configured")
	}

	// Claims are second-granular; truncating first keeps exp-iat exactly ttl.
	iat := issuedAt.Truncate(time.Second)

	claims := AccessClaims{
		Room:  room,
		Video: grant,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.apiKey,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(iat),
			NotBefore: jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.apiSecret)
	if err != nil {
		return "", fmt.Errorf("sign livekit token: %w", err)
	}
	return token, nil
}
