package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKVRoundTrip(t *testing.T, repo KVRepository) {
	t.Helper()
	ctx := context.Background()

	_, err := repo.Get(ctx, "daily-news")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, repo.Set(ctx, "daily-news", []byte(`{"updatedAt":"first","news":[]}`)))
	require.NoError(t, repo.Set(ctx, "daily-news", []byte(`{"updatedAt":"second","news":[1]}`)))

	got, err := repo.Get(ctx, "daily-news")
	require.NoError(t, err)
	assert.JSONEq(t, `{"updatedAt":"second","news":[1]}`, string(got))
}

func TestMemoryKVRepository(t *testing.T) {
	testKVRoundTrip(t, NewMemoryKVRepository())
}

func TestMemoryKVRepositoryCopiesValues(t *testing.T) {
	repo := NewMemoryKVRepository()
	value := []byte(`{"a":1}`)
	require.NoError(t, repo.Set(context.Background(), "k", value))
	value[2] = 'b'

	got, err := repo.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestRedisKVRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := NewRedisKVRepository(client)
	testKVRoundTrip(t, repo)

	assert.Equal(t, time.Duration(0), mr.TTL("daily-news"))
}

func TestRedisKVRepositoryUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	repo := NewRedisKVRepository(client)
	err := repo.Set(context.Background(), "daily-news", []byte(`{}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)

	_, err = repo.Get(context.Background(), "daily-news")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}
