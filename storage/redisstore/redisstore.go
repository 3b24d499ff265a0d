// Package redisstore provides a redis-backed storage.Repo for setups where
// credentials must survive outside the local filesystem (shared boxes, CI).
package redisstore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/spotilike/go-client/storage"
)

const defaultKeyPrefix = "spotilike:"

var _ storage.Repo = (*RedisStore)(nil)

type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisStoreOption defines a function type to modify the RedisStore instance.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix overrides the namespace prepended to every key.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) {
		rs.prefix = prefix
	}
}

func New(client *redis.Client, options ...RedisStoreOption) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("[redisstore.New] redis client is required")
	}

	rs := &RedisStore{
		client: client,
		prefix: defaultKeyPrefix,
	}
	for _, opt := range options {
		opt(rs)
	}
	return rs, nil
}

func (rs *RedisStore) Get(key string) (string, bool, error) {
	value, err := rs.client.Get(context.Background(), rs.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "[RedisStore.Get] redis get")
	}
	return value, true, nil
}

func (rs *RedisStore) Set(key, value string) error {
	if err := rs.client.Set(context.Background(), rs.prefix+key, value, 0).Err(); err != nil {
		return errors.Wrap(err, "[RedisStore.Set] redis set")
	}
	return nil
}

func (rs *RedisStore) Delete(key string) error {
	if err := rs.client.Del(context.Background(), rs.prefix+key).Err(); err != nil {
		return errors.Wrap(err, "[RedisStore.Delete] redis del")
	}
	return nil
}
