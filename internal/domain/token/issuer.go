package token

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"livekit-token-service/internal/utils/platformerrors"
)

// Issuer validates identity and room and mints a participant token.
type Issuer struct {
	signer Signer
	now    func() time.Time
	log    zerolog.Logger
}

// NewIssuer creates a token issuer. now defaults to time.Now.
func NewIssuer(signer Signer, now func() time.Time, log zerolog.Logger) *Issuer {
	if now == nil {
		now = time.Now
	}
	return &Issuer{
		signer: signer,
		now:    now,
		log:    log.With().Str("component", "token-issuer").Logger(),
	}
}

// Issue mints a token valid for AccessTokenTTL from now. Each call signs a
// fresh token; nothing is remembered.
func (i *Issuer) Issue(ctx context.Context, identity, room string) (*Grant, error) {
	if identity == "" || room == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, ErrMsgIdentityAndRoomRequired, nil)
	}

	issuedAt := i.now().Truncate(time.Second)

	signed, err := i.signer.SignAccess(identity, room, issuedAt, AccessTokenTTL)
	if err != nil {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal, "sign access token", err, map[string]any{
			"room": room,
		})
	}

	return &Grant{
		Token:     signed,
		Identity:  identity,
		Room:      room,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(AccessTokenTTL),
	}, nil
}
