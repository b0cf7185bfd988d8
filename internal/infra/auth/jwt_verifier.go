// Package auth provides the session JWT verifier backed by the issuer JWKS and the Auth API.
package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// signing algorithms accepted for session tokens
var validMethods = []string{
	"RS256", "RS384", "RS512",
	"PS256", "PS384", "PS512",
	"ES256", "ES384", "ES512",
	"EdDSA",
}

type jwtVerifier struct {
	cache         *JWKSCache
	authAPI       service.AuthAPI
	verifyTimeout time.Duration
	logger        *slog.Logger
}

// VerifierParams holds dependencies for the JWT verifier, injected by Fx.
type VerifierParams struct {
	fx.In

	Config  *config.Config
	AuthAPI service.AuthAPI
	Cache   *JWKSCache
	Logger  *slog.Logger
}

// NewJWKSCacheFromConfig provides the process wide JWKS cache.
func NewJWKSCacheFromConfig(cfg *config.Config, authAPI service.AuthAPI) *JWKSCache {
	return NewJWKSCache(authAPI, cfg.AuthAPI.JWKSCacheTTL)
}

// NewJWTVerifier creates the session token verifier.
func NewJWTVerifier(params VerifierParams) service.TokenVerifier {
	return &jwtVerifier{
		cache:         params.Cache,
		authAPI:       params.AuthAPI,
		verifyTimeout: params.Config.AuthAPI.VerifyTimeout,
		logger:        params.Logger,
	}
}

func (v *jwtVerifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, v.logger)
}

// Verify checks the signature against the issuer key matching kid, then asks the Auth API
// whether the session is still active. Every failure, panics included, is an invalid result.
func (v *jwtVerifier) Verify(ctx context.Context, tokenString string) (result entity.VerifyResult) {
	defer func() {
		if r := recover(); r != nil {
			v.log(ctx).Warn("Session JWT verification panicked", slog.Any("panic", r))
			result = entity.Invalid()
		}
	}()

	if tokenString == "" {
		return entity.Invalid()
	}

	claims, err := v.parse(ctx, tokenString)
	if err != nil {
		v.log(ctx).Debug("Session JWT rejected", slog.Any("error", err))

		return entity.Invalid()
	}

	jti := claims.JTI
	if jti == "" {
		jti = strings.TrimPrefix(claims.Subject, entity.SessionSubjectPrefix)
	}
	if jti == "" {
		v.log(ctx).Debug("Session JWT has neither jti nor session subject")

		return entity.Invalid()
	}

	verifyCtx, cancel := context.WithTimeout(ctx, v.verifyTimeout)
	defer cancel()

	active, err := v.authAPI.VerifySession(verifyCtx, jti)
	if err != nil {
		v.log(ctx).Warn("Session verify call failed", slog.Any("error", err))

		return entity.Invalid()
	}
	if !active {
		return entity.Invalid()
	}

	return entity.VerifyResult{Valid: true, Claims: claims}
}

func (v *jwtVerifier) parse(ctx context.Context, tokenString string) (*entity.SessionClaims, error) {
	mapClaims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, mapClaims, func(token *jwt.Token) (any, error) {
		return v.keyFor(ctx, token)
	}, jwt.WithValidMethods(validMethods))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session jwt")
	}

	return toSessionClaims(mapClaims), nil
}

// keyFor resolves the verification key strictly by kid. There is no fallback to other keys.
func (v *jwtVerifier) keyFor(ctx context.Context, token *jwt.Token) (any, error) {
	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return nil, errors.New("token header missing kid")
	}

	keySet, err := v.cache.Keys(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load jwks")
	}

	key, found := keySet.LookupKeyID(kid)
	if !found {
		return nil, errors.Errorf("key ID %s not found in JWKS", kid)
	}

	var rawKey any
	if err := jwk.Export(key, &rawKey); err != nil {
		return nil, errors.Wrap(err, "failed to export raw key")
	}

	return rawKey, nil
}

func toSessionClaims(mapClaims jwt.MapClaims) *entity.SessionClaims {
	claims := &entity.SessionClaims{Raw: mapClaims}

	claims.Subject, _ = mapClaims.GetSubject()
	claims.Issuer, _ = mapClaims.GetIssuer()
	if jti, ok := mapClaims["jti"].(string); ok {
		claims.JTI = jti
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}

	return claims
}
