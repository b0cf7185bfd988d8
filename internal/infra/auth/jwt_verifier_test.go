package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"portal/config"
	mockService "portal/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testKeyID = "test-key-1"

type testIssuer struct {
	privateKey *rsa.PrivateKey
	jwks       []byte
}

func newTestIssuer(t *testing.T) *testIssuer {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	key, err := jwk.Import(&privateKey.PublicKey)
	require.NoError(t, err)
	require.NoError(t, key.Set(jwk.KeyIDKey, testKeyID))
	require.NoError(t, key.Set(jwk.AlgorithmKey, "RS256"))

	keySet := jwk.NewSet()
	require.NoError(t, keySet.AddKey(key))

	raw, err := json.Marshal(keySet)
	require.NoError(t, err)

	return &testIssuer{privateKey: privateKey, jwks: raw}
}

func (i *testIssuer) sign(t *testing.T, kid string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}

	signed, err := token.SignedString(i.privateKey)
	require.NoError(t, err)

	return signed
}

func sessionClaims(sessionID string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": "SID_" + sessionID,
		"jti": sessionID,
		"iss": "https://auth.example",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestVerifier(authAPI *mockService.MockAuthAPI, ttl time.Duration) (*jwtVerifier, *JWKSCache) {
	cfg := &config.Config{}
	cfg.AuthAPI.VerifyTimeout = time.Second
	cfg.AuthAPI.JWKSCacheTTL = ttl

	cache := NewJWKSCacheFromConfig(cfg, authAPI)
	verifier := NewJWTVerifier(VerifierParams{
		Config:  cfg,
		AuthAPI: authAPI,
		Cache:   cache,
		Logger:  newDiscardLogger(),
	})

	return verifier.(*jwtVerifier), cache
}

func TestJWTVerifier_Verify_Success(t *testing.T) {
	issuer := newTestIssuer(t)
	authAPI := mockService.NewMockAuthAPI(t)
	verifier, cache := newTestVerifier(authAPI, time.Hour)
	ctx := context.Background()

	authAPI.EXPECT().JWKS(mock.Anything).Return(issuer.jwks, nil).Once()
	authAPI.EXPECT().VerifySession(mock.Anything, "session-1").Return(true, nil).Once()

	result := verifier.Verify(ctx, issuer.sign(t, testKeyID, sessionClaims("session-1")))

	require.True(t, result.Valid)
	assert.Equal(t, "SID_session-1", result.Claims.Subject)
	assert.Equal(t, "session-1", result.Claims.JTI)
	assert.Equal(t, "https://auth.example", result.Claims.Issuer)
	assert.False(t, cache.FetchedAt().IsZero())

	sessionID, ok := result.Claims.SessionID()
	assert.True(t, ok)
	assert.Equal(t, "session-1", sessionID)
}

func TestJWTVerifier_Verify_FallsBackToSubjectWithoutJTI(t *testing.T) {
	issuer := newTestIssuer(t)
	authAPI := mockService.NewMockAuthAPI(t)
	verifier, _ := newTestVerifier(authAPI, time.Hour)

	claims := sessionClaims("session-2")
	delete(claims, "jti")

	authAPI.EXPECT().JWKS(mock.Anything).Return(issuer.jwks, nil).Once()
	authAPI.EXPECT().VerifySession(mock.Anything, "session-2").Return(true, nil).Once()

	result := verifier.Verify(context.Background(), issuer.sign(t, testKeyID, claims))

	assert.True(t, result.Valid)
}

func TestJWTVerifier_CachesJWKSWithinTTL(t *testing.T) {
	issuer := newTestIssuer(t)
	authAPI := mockService.NewMockAuthAPI(t)
	verifier, _ := newTestVerifier(authAPI, time.Hour)
	token := issuer.sign(t, testKeyID, sessionClaims("session-1"))

	authAPI.EXPECT().JWKS(mock.Anything).Return(issuer.jwks, nil).Once()
	authAPI.EXPECT().VerifySession(mock.Anything, "session-1").Return(true, nil).Times(5)

	for range 5 {
		assert.True(t, verifier.Verify(context.Background(), token).Valid)
	}
}

func TestJWTVerifier_RefetchesJWKSAfterExpiry(t *testing.T) {
	issuer := newTestIssuer(t)
	authAPI := mockService.NewMockAuthAPI(t)
	verifier, _ := newTestVerifier(authAPI, 50*time.Millisecond)
	token := issuer.sign(t, testKeyID, sessionClaims("session-1"))

	authAPI.EXPECT().JWKS(mock.Anything).Return(issuer.jwks, nil).Twice()
	authAPI.EXPECT().VerifySession(mock.Anything, "session-1").Return(true, nil).Twice()

	assert.True(t, verifier.Verify(context.Background(), token).Valid)
	time.Sleep(100 * time.Millisecond)
	assert.True(t, verifier.Verify(context.Background(), token).Valid)
}
