package tokenvalidator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slimauth/pkg/cache"
	"github.com/dmitrymomot/slimauth/pkg/session"
	"github.com/dmitrymomot/slimauth/pkg/tokenvalidator"
)

type countingValidator struct {
	calls  int
	result bool
	err    error
}

func (c *countingValidator) ValidateAccessToken(context.Context, string) (bool, error) {
	c.calls++
	return c.result, c.err
}

func TestChain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	errDown := errors.New("down")

	t.Run("all affirm", func(t *testing.T) {
		t.Parallel()
		a, b := &countingValidator{result: true}, &countingValidator{result: true}
		ok, err := tokenvalidator.Chain(a, b).ValidateAccessToken(ctx, "t")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, a.calls)
		assert.Equal(t, 1, b.calls)
	})

	t.Run("denial stops the chain", func(t *testing.T) {
		t.Parallel()
		a, b := &countingValidator{result: false}, &countingValidator{result: true}
		ok, err := tokenvalidator.Chain(a, b).ValidateAccessToken(ctx, "t")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0, b.calls)
	})

	t.Run("error stops the chain", func(t *testing.T) {
		t.Parallel()
		a, b := &countingValidator{err: errDown}, &countingValidator{result: true}
		ok, err := tokenvalidator.Chain(a, b).ValidateAccessToken(ctx, "t")
		assert.ErrorIs(t, err, errDown)
		assert.False(t, ok)
		assert.Equal(t, 0, b.calls)
	})

	t.Run("empty chain denies", func(t *testing.T) {
		t.Parallel()
		ok, err := tokenvalidator.Chain(nil).ValidateAccessToken(ctx, "t")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("accepts funcs", func(t *testing.T) {
		t.Parallel()
		fn := session.AccessTokenValidatorFunc(func(_ context.Context, token string) (bool, error) {
			return token == "good", nil
		})
		ok, err := tokenvalidator.Chain(fn).ValidateAccessToken(ctx, "good")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("caches affirmative answers", func(t *testing.T) {
		t.Parallel()
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		inner := &countingValidator{result: true}
		v := tokenvalidator.NewCached(inner, 8, time.Minute, cache.WithClock(func() time.Time { return now }))

		for range 3 {
			ok, err := v.ValidateAccessToken(ctx, "t")
			require.NoError(t, err)
			assert.True(t, ok)
		}
		assert.Equal(t, 1, inner.calls)

		now = now.Add(2 * time.Minute)
		_, _ = v.ValidateAccessToken(ctx, "t")
		assert.Equal(t, 2, inner.calls, "expired entries are checked again")

		v.Forget("t")
		_, _ = v.ValidateAccessToken(ctx, "t")
		assert.Equal(t, 3, inner.calls)
	})

	t.Run("entries never outlive the token exp", func(t *testing.T) {
		t.Parallel()
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		inner := &countingValidator{result: true}
		v := tokenvalidator.NewCached(inner, 8, time.Minute, cache.WithClock(func() time.Time { return now }))

		token := sign(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Second)),
		})

		ok, err := v.ValidateAccessToken(ctx, token)
		require.NoError(t, err)
		assert.True(t, ok)
		_, _ = v.ValidateAccessToken(ctx, token)
		assert.Equal(t, 1, inner.calls)

		now = now.Add(11 * time.Second)
		inner.result = false
		ok, err = v.ValidateAccessToken(ctx, token)
		require.NoError(t, err)
		assert.False(t, ok, "expired token must reach the wrapped validator")
		assert.Equal(t, 2, inner.calls)
	})

	t.Run("expired tokens are not cached", func(t *testing.T) {
		t.Parallel()
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		inner := &countingValidator{result: true}
		v := tokenvalidator.NewCached(inner, 8, time.Minute, cache.WithClock(func() time.Time { return now }))

		token := sign(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Second)),
		})

		for range 2 {
			_, _ = v.ValidateAccessToken(ctx, token)
		}
		assert.Equal(t, 2, inner.calls)
	})

	t.Run("denials are not cached", func(t *testing.T) {
		t.Parallel()
		inner := &countingValidator{result: false}
		v := tokenvalidator.NewCached(inner, 8, time.Minute)

		for range 2 {
			ok, err := v.ValidateAccessToken(ctx, "t")
			require.NoError(t, err)
			assert.False(t, ok)
		}
		assert.Equal(t, 2, inner.calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()
		inner := &countingValidator{err: errors.New("down")}
		v := tokenvalidator.NewCached(inner, 8, time.Minute)

		_, err := v.ValidateAccessToken(ctx, "t")
		assert.Error(t, err)
		inner.err, inner.result = nil, true

		ok, err := v.ValidateAccessToken(ctx, "t")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 2, inner.calls)
	})
}
