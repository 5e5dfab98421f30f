package tokenvalidator

import (
	"context"

	"github.com/dmitrymomot/slimauth/pkg/session"
)

type chain []session.AccessTokenValidator

// Chain affirms a token only when every validator does. Validators run in
// order and the first denial or error stops the chain. An empty chain
// denies everything.
func Chain(validators ...session.AccessTokenValidator) session.AccessTokenValidator {
	c := make(chain, 0, len(validators))
	for _, v := range validators {
		if v != nil {
			c = append(c, v)
		}
	}
	return c
}

func (c chain) ValidateAccessToken(ctx context.Context, token string) (bool, error) {
	if len(c) == 0 {
		return false, nil
	}
	for _, v := range c {
		ok, err := v.ValidateAccessToken(ctx, token)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}
