package appclient

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/redis/go-redis/v9"
)

var _ TokenStore = &RedisTokenStore{}

// RedisTokenStore keeps the token in Redis for clients that already carry
// a Redis connection. The value never expires on its own; only Clear or a
// gateway 401 removes it.
type RedisTokenStore struct {
	client redis.UniversalClient
	key    string
}

func NewRedisTokenStore(client redis.UniversalClient, cfg Config) *RedisTokenStore {
	return &RedisTokenStore{
		client: client,
		key:    cfg.GetTokenKey(),
	}
}

func (s *RedisTokenStore) Get(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to read token")
	}
	return val, nil
}

func (s *RedisTokenStore) Set(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to store token")
	}
	return nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to clear token")
	}
	return nil
}
