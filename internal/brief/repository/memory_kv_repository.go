package repository

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// NewMemoryKVRepository creates a process-local KVRepository. Values never expire.
func NewMemoryKVRepository() KVRepository {
	return &memoryKVRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

type memoryKVRepository struct {
	cache *cache.Cache
}

func (r *memoryKVRepository) Set(_ context.Context, key string, value []byte) error {
	r.cache.Set(key, append([]byte(nil), value...), cache.NoExpiration)
	return nil
}

func (r *memoryKVRepository) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := r.cache.Get(key)
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), value.([]byte)...), nil
}
