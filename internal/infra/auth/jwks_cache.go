package auth

import (
	"context"
	"sync/atomic"
	"time"

	"portal/internal/domain/service"

	"github.com/jellydator/ttlcache/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/pkg/errors"
)

const jwksCacheKey = "jwks"

// JWKSCache holds the issuer key set in process memory and lazily refetches it after the TTL.
// Concurrent refreshes after expiry are allowed; each one stores the same public data.
type JWKSCache struct {
	keys      *ttlcache.Cache[string, jwk.Set]
	fetchedAt atomic.Pointer[time.Time]
	authAPI   service.AuthAPI
}

// NewJWKSCache creates an empty cache. Nothing is fetched until the first lookup.
func NewJWKSCache(authAPI service.AuthAPI, ttl time.Duration) *JWKSCache {
	return &JWKSCache{
		keys: ttlcache.New(
			ttlcache.WithTTL[string, jwk.Set](ttl),
			ttlcache.WithDisableTouchOnHit[string, jwk.Set](),
		),
		authAPI: authAPI,
	}
}

// Keys returns the cached key set, fetching it when missing or expired.
func (c *JWKSCache) Keys(ctx context.Context) (jwk.Set, error) {
	if item := c.keys.Get(jwksCacheKey); item != nil {
		return item.Value(), nil
	}

	raw, err := c.authAPI.JWKS(ctx)
	if err != nil {
		return nil, err
	}

	keySet, err := jwk.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse jwks")
	}

	c.keys.Set(jwksCacheKey, keySet, ttlcache.DefaultTTL)
	now := time.Now()
	c.fetchedAt.Store(&now)

	return keySet, nil
}

// FetchedAt returns when the key set was last fetched, or the zero time.
func (c *JWKSCache) FetchedAt() time.Time {
	if fetchedAt := c.fetchedAt.Load(); fetchedAt != nil {
		return *fetchedAt
	}

	return time.Time{}
}

// Invalidate drops the cached key set.
func (c *JWKSCache) Invalidate() {
	c.keys.Delete(jwksCacheKey)
}
