package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTokenTTL = time.Hour

// TokenIndex maps access tokens to customer ids in Redis.
// Key format: token:<sha256(token)>. Raw tokens never reach Redis.
type TokenIndex struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTokenIndex(client *redis.Client, ttl time.Duration) *TokenIndex {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIndex{client: client, ttl: ttl}
}

// Lookup returns the cached customer id, or "" on a miss.
func (t *TokenIndex) Lookup(ctx context.Context, token string) (string, error) {
	id, err := t.client.Get(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("token index lookup: %w", err)
	}
	return id, nil
}

// Remember records token -> customerID (expires after ttl).
func (t *TokenIndex) Remember(ctx context.Context, token, customerID string) error {
	return t.client.Set(ctx, tokenKey(token), customerID, t.ttl).Err()
}

func (t *TokenIndex) Forget(ctx context.Context, token string) error {
	return t.client.Del(ctx, tokenKey(token)).Err()
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "token:" + hex.EncodeToString(sum[:])
}
