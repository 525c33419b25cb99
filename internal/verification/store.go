package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CodeStore holds short-lived verification codes. Codes expire on their
// own; a successful check consumes the code.
type CodeStore interface {
	// Put stores the code for a user/channel pair with the given TTL,
	// replacing any previous code.
	Put(ctx context.Context, userID, channel, code string, ttl time.Duration) error

	// Get returns the stored code, or "" when none exists.
	Get(ctx context.Context, userID, channel string) (string, error)

	// Delete removes the code after a successful check.
	Delete(ctx context.Context, userID, channel string) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) CodeStore {
	return &redisStore{client: client}
}

func codeKey(userID, channel string) string {
	return fmt.Sprintf("verification:%s:%s", channel, userID)
}

func (s *redisStore) Put(ctx context.Context, userID, channel, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, codeKey(userID, channel), code, ttl).Err(); err != nil {
		return fmt.Errorf("store verification code failed: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, userID, channel string) (string, error) {
	code, err := s.client.Get(ctx, codeKey(userID, channel)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read verification code failed: %w", err)
	}
	return code, nil
}

func (s *redisStore) Delete(ctx context.Context, userID, channel string) error {
	if err := s.client.Del(ctx, codeKey(userID, channel)).Err(); err != nil {
		return fmt.Errorf("delete verification code failed: %w", err)
	}
	return nil
}
