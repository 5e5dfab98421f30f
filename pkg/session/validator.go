package session

import "context"

// AccessTokenValidator decides whether an access token is still valid.
// A false result with a nil error means the token was checked and rejected.
type AccessTokenValidator interface {
	ValidateAccessToken(ctx context.Context, accessToken string) (bool, error)
}

// AccessTokenValidatorFunc adapts a function to AccessTokenValidator.
type AccessTokenValidatorFunc func(ctx context.Context, accessToken string) (bool, error)

func (f AccessTokenValidatorFunc) ValidateAccessToken(ctx context.Context, accessToken string) (bool, error) {
	return f(ctx, accessToken)
}
