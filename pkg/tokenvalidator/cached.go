package tokenvalidator

import (
	"context"
	"crypto/sha256"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrymomot/slimauth/pkg/cache"
	"github.com/dmitrymomot/slimauth/pkg/session"
)

// Cached remembers affirmative answers of the wrapped validator for ttl.
// Denials and errors are never cached. For JWTs the entry never outlives
// the token's exp claim.
type Cached struct {
	next  session.AccessTokenValidator
	cache *cache.LRU[[sha256.Size]byte, struct{}]
}

func NewCached(next session.AccessTokenValidator, size int, ttl time.Duration, opts ...cache.Option) *Cached {
	return &Cached{
		next:  next,
		cache: cache.New[[sha256.Size]byte, struct{}](size, ttl, opts...),
	}
}

func (c *Cached) ValidateAccessToken(ctx context.Context, token string) (bool, error) {
	key := sha256.Sum256([]byte(token))
	if _, ok := c.cache.Get(key); ok {
		return true, nil
	}

	ok, err := c.next.ValidateAccessToken(ctx, token)
	if err != nil || !ok {
		return false, err
	}

	if exp, ok := expiresAt(token); ok {
		c.cache.SetWithDeadline(key, struct{}{}, exp)
	} else {
		c.cache.Set(key, struct{}{})
	}
	return true, nil
}

// Forget drops the cached answer for token, e.g. right after revoking it.
func (c *Cached) Forget(token string) {
	c.cache.Delete(sha256.Sum256([]byte(token)))
}

// expiresAt reads the exp claim without verifying the signature. It is only
// consulted after the wrapped validator affirmed the token.
func expiresAt(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
