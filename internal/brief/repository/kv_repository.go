package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVRepository.Get for a key that was never written.
var ErrKeyNotFound = errors.New("key not found")

// KVRepository is a minimal key-value store. Set overwrites unconditionally.
type KVRepository interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}
