package activeorg

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisStorage implements Storage on top of Redis. Keys are namespaced by the
// session id, and every write refreshes the TTL so the stored values expire
// together with the session.
type RedisStorage struct {
	db     redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStorage creates a storage scoped to sessionID. A zero ttl keeps values
// until they are removed explicitly.
func NewRedisStorage(client redis.UniversalClient, sessionID string, ttl time.Duration) (*RedisStorage, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}
	return &RedisStorage{
		db:     client,
		prefix: sessionKeyPrefix + sessionID + ":",
		ttl:    ttl,
	}, nil
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.db.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStorage) Set(ctx context.Context, key, value string) error {
	return s.db.Set(ctx, s.prefix+key, value, s.ttl).Err()
}

func (s *RedisStorage) Remove(ctx context.Context, key string) error {
	return s.db.Del(ctx, s.prefix+key).Err()
}
