package tokenvalidator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRevocationPrefix namespaces revocation keys.
const DefaultRevocationPrefix = "slimauth:revoked:"

// RevocationList is a Redis-backed deny list of access tokens. Tokens are
// stored as SHA-256 digests so the raw value never reaches Redis.
type RevocationList struct {
	client redis.UniversalClient
	prefix string
}

func NewRevocationList(client redis.UniversalClient, prefix string) (*RevocationList, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if prefix == "" {
		prefix = DefaultRevocationPrefix
	}
	return &RevocationList{client: client, prefix: prefix}, nil
}

// Revoke denies token for ttl. Use the remaining token lifetime; a
// non-positive ttl keeps the entry until Restore.
func (l *RevocationList) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := l.client.Set(ctx, l.key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke access token: %w", err)
	}
	return nil
}

// Restore removes token from the deny list.
func (l *RevocationList) Restore(ctx context.Context, token string) error {
	if err := l.client.Del(ctx, l.key(token)).Err(); err != nil {
		return fmt.Errorf("restore access token: %w", err)
	}
	return nil
}

func (l *RevocationList) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked access token: %w", err)
	}
	return n > 0, nil
}

// ValidateAccessToken affirms every token that is not revoked.
func (l *RevocationList) ValidateAccessToken(ctx context.Context, token string) (bool, error) {
	revoked, err := l.IsRevoked(ctx, token)
	if err != nil {
		return false, err
	}
	return !revoked, nil
}

func (l *RevocationList) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return l.prefix + hex.EncodeToString(sum[:])
}
