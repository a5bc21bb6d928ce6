package livekit

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/livekit/protocol/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livekit-token-service/internal/config"
)

const (
	testAPIKey    = "APItestkey"
	testAPISecret = "test-secret-that-is-long-enough-for-hs256"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 500_000_000, time.UTC)

func newTestSigner() *TokenSigner {
	return NewTokenSigner(&config.Config{
		LiveKitAPIKey:    testAPIKey,
		LiveKitAPISecret: testAPISecret,
	})
}

func parseClaims(t *testing.T, token string, at time.Time) *AccessClaims {
	t.Helper()
	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (any, error) {
		return []byte(testAPISecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return at }),
		jwt.WithIssuedAt(),
	)
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	return claims
}

func rawPayload(t *testing.T, token string) map[string]any {
	t.Helper()
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	data, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	return payload
}

func TestSignAccess_Claims(t *testing.T) {
	signer := newTestSigner()

	token, err := signer.SignAccess("alice", "demo", fixedNow, time.Hour)
	require.NoError(t, err)

	claims := parseClaims(t, token, fixedNow)
	assert.Equal(t, testAPIKey, claims.Issuer)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "demo", claims.Room)
	assert.Equal(t, int64(3600), claims.ExpiresAt.Unix()-claims.IssuedAt.Unix())
	assert.Equal(t, claims.IssuedAt.Unix(), claims.NotBefore.Unix())
	assert.Equal(t, fixedNow.Unix(), claims.IssuedAt.Unix())

	require.NotNil(t, claims.Video)
	assert.Equal(t, "demo", claims.Video.Room)
	assert.True(t, claims.Video.RoomJoin)
	require.NotNil(t, claims.Video.CanPublish)
	require.NotNil(t, claims.Video.CanSubscribe)
	assert.True(t, *claims.Video.CanPublish)
	assert.True(t, *claims.Video.CanSubscribe)
	assert.False(t, claims.Video.RoomAdmin)
}

func TestSignAccess_ExactPayloadShape(t *testing.T) {
	token, err := newTestSigner().SignAccess("alice", "demo", fixedNow, time.Hour)
	require.NoError(t, err)

	payload := rawPayload(t, token)
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"iss", "sub", "room", "iat", "nbf", "exp", "video"}, keys)
	assert.Equal(t, map[string]any{
		"room":         "demo",
		"roomJoin":     true,
		"canPublish":   true,
		"canSubscribe": true,
	}, payload["video"])
}

func TestSignAccess_Header(t *testing.T) {
	token, err := newTestSigner().SignAccess("alice", "demo", fixedNow, time.Hour)
	require.NoError(t, err)

	header, err := base64.RawURLEncoding.DecodeString(strings.Split(token, ".")[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"alg":"HS256","typ":"JWT"}`, string(header))
}

func TestSignAccess_ReadableByLiveKit(t *testing.T) {
	token, err := newTestSigner().SignAccess("alice", "demo", time.Now(), time.Hour)
	require.NoError(t, err)

	verifier, err := auth.ParseAPIToken(token)
	require.NoError(t, err)
	assert.Equal(t, testAPIKey, verifier.APIKey())
	assert.Equal(t, "alice", verifier.Identity())
}

func TestSignAccess_WrongSecretRejected(t *testing.T) {
	token, err := newTestSigner().SignAccess("alice", "demo", fixedNow, time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte("another-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return fixedNow }))
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestSignAccess_ExpiredAfterTTL(t *testing.T) {
	token, err := newTestSigner().SignAccess("alice", "demo", fixedNow, time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte(testAPISecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return fixedNow.Add(time.Hour + time.Second) }))
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestSignAdmin_Claims(t *testing.T) {
	token, err := newTestSigner().SignAdmin("demo", fixedNow, 5*time.Minute)
	require.NoError(t, err)

	claims := parseClaims(t, token, fixedNow)
	assert.Equal(t, AdminSubject, claims.Subject)
	assert.Equal(t, int64(300), claims.ExpiresAt.Unix()-claims.IssuedAt.Unix())
	assert.Empty(t, claims.Room)
	require.NotNil(t, claims.Video)
	assert.True(t, claims.Video.RoomAdmin)
	assert.Equal(t, "demo", claims.Video.Room)
	assert.False(t, claims.Video.RoomJoin)
	assert.Nil(t, claims.Video.CanPublish)
	assert.Nil(t, claims.Video.CanSubscribe)
}

func TestSign_MissingSecret(t *testing.T) {
	signer := NewTokenSigner(&config.Config{LiveKitAPIKey: testAPIKey})

	_, err := signer.SignAccess("alice", "demo", fixedNow, time.Hour)
	assert.Error(t, err)
}
