package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisKV implements KV on a Redis instance. Keys are namespaced with a
// prefix so the collection keys don't collide with sessions or rate-limit
// buckets on a shared instance.
type RedisKV struct {
	client *redis.Client
	prefix string
}

// NewRedisKV creates a Redis-backed KV store. Prefix may be empty.
func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	if prefix == "" {
		prefix = "collections:"
	}
	return &RedisKV{client: client, prefix: prefix}
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	// collections never expire
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}
