package storage

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisBackend stores each collection under a redis string key with no
// expiration. 单进程单写者，因此无需任何锁或事务。
type RedisBackend struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisBackend 创建Redis后端
func NewRedisBackend(addr string, db int) *RedisBackend {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password set
		DB:       db,
	})

	return &RedisBackend{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Read 读取键值
func (b *RedisBackend) Read(key string) (string, bool, error) {
	value, err := b.Client.Get(b.Ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, ErrUnavailable
	}
	return value, true, nil
}

// Write 写入键值
func (b *RedisBackend) Write(key, value string) error {
	if err := b.Client.Set(b.Ctx, key, value, 0).Err(); err != nil {
		return ErrUnavailable
	}
	return nil
}
