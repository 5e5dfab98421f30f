// Package tokenvalidator provides access-token validators for
// session.Manager.
//
//   - JWT verifies HMAC-signed JSON Web Tokens (signature, expiry, issuer,
//     audience) with github.com/golang-jwt/jwt/v5 and can issue them.
//   - RevocationList denies tokens that were revoked, using Redis keys that
//     expire with the token.
//   - Chain requires every validator to affirm a token.
//   - Cached remembers affirmative answers for a short time.
//
// A token that is checked and found invalid yields (false, nil). Errors are
// reserved for validators that could not reach a decision, such as an
// unreachable Redis server.
//
//	jwtv, _ := tokenvalidator.NewJWT(tokenvalidator.JWTConfig{Secret: secret, Issuer: "slimauth"})
//	revoked, _ := tokenvalidator.NewRevocationList(redisClient, "slimauth:revoked:")
//
//	manager, _ := session.New(cfg, session.WithAccessTokenValidator(
//	    tokenvalidator.NewCached(tokenvalidator.Chain(jwtv, revoked), 1024, time.Minute),
//	))
package tokenvalidator
