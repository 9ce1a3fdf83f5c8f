package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewRedisKVRepository creates a KVRepository on top of Redis.
func NewRedisKVRepository(client *redis.Client) KVRepository {
	return &redisKVRepository{client: client}
}

type redisKVRepository struct {
	client *redis.Client
}

// Set stores value under key without expiration.
func (r *redisKVRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set redis key %s: %w", key, err)
	}
	return nil
}

func (r *redisKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get redis key %s: %w", key, err)
	}
	return value, nil
}
