package redisstore_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/spotilike/go-client/storage"
	"github.com/spotilike/go-client/storage/redisstore"
)

func setupStore(t *testing.T) (*redisstore.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := redisstore.New(client)
	require.NoError(t, err)
	return store, mr
}

func TestSetGetDelete(t *testing.T) {
	store, _ := setupStore(t)

	_, ok, err := store.Get(storage.TokenKey)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set(storage.TokenKey, "T"))

	value, ok, err := store.Get(storage.TokenKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "T", value)

	require.NoError(t, store.Delete(storage.TokenKey))
	_, ok, _ = store.Get(storage.TokenKey)
	require.False(t, ok)
}

func TestKeysAreNamespaced(t *testing.T) {
	store, mr := setupStore(t)

	require.NoError(t, store.Set(storage.TokenKey, "T"))

	raw, err := mr.Get("spotilike:" + storage.TokenKey)
	require.NoError(t, err)
	require.Equal(t, "T", raw)
}

func TestWithKeyPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := redisstore.New(client, redisstore.WithKeyPrefix("custom:"))
	require.NoError(t, err)

	require.NoError(t, store.Set(storage.UserKey, "{}"))
	raw, err := mr.Get("custom:" + storage.UserKey)
	require.NoError(t, err)
	require.Equal(t, "{}", raw)
}

func TestNewRequiresClient(t *testing.T) {
	_, err := redisstore.New(nil)
	require.Error(t, err)
}
