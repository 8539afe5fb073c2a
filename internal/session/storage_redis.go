package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps the session keys in redis, for deployments where
// several front-of-house terminals share one signed-in session.
type RedisStorage struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStorage(addr string) *RedisStorage {
	return &RedisStorage{
		rdb:    redis.NewClient(&redis.Options{Addr: addr}),
		prefix: "thegriller:session:",
	}
}

func (r *RedisStorage) Get(key string) (string, error) {
	val, err := r.rdb.Get(context.Background(), r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisStorage) Set(key, value string) error {
	return r.rdb.Set(context.Background(), r.prefix+key, value, 0).Err()
}

func (r *RedisStorage) Delete(key string) error {
	return r.rdb.Del(context.Background(), r.prefix+key).Err()
}
