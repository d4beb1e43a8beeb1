package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "saleor:session"

// RedisStore keeps tokens in a Redis key so several processes share one
// session. The key expires with the refresh token when it carries an exp
// claim.
type RedisStore struct {
	client goredis.UniversalClient
	key    string
}

func NewRedisStore(client goredis.UniversalClient, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Load(ctx context.Context) (Tokens, error) {
	val, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return Tokens{}, ErrNotLoggedIn
	}
	if err != nil {
		return Tokens{}, fmt.Errorf("failed to load tokens: %w", err)
	}
	var tokens Tokens
	if err := json.Unmarshal(val, &tokens); err != nil {
		return Tokens{}, fmt.Errorf("failed to decode tokens: %w", err)
	}
	return tokens, nil
}

func (s *RedisStore) Save(ctx context.Context, tokens Tokens) error {
	val, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to encode tokens: %w", err)
	}
	if err := s.client.Set(ctx, s.key, val, ttlOf(tokens, time.Now())).Err(); err != nil {
		return fmt.Errorf("failed to save tokens: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// ttlOf returns how long tokens stay usable: until the refresh token
// expires, or the access token when there is no refresh token. Zero means
// no expiry.
func ttlOf(tokens Tokens, now time.Time) time.Duration {
	token := tokens.RefreshToken
	if token == "" {
		token = tokens.Token
	}
	claims, err := ParseClaims(token)
	if err != nil || claims.ExpiresAt == nil {
		return 0
	}
	if ttl := claims.ExpiresAt.Sub(now); ttl > 0 {
		return ttl
	}
	return time.Second
}
