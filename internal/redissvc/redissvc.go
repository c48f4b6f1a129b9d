package redissvc

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb *redis.Client
}

func NewRedisService(addr string) *RedisService {
	return &RedisService{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

// Ping checks that redis is reachable.
func (a *RedisService) Ping(ctx context.Context) error {
	if err := a.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not connect to redis: %w", err)
	}
	return nil
}

func (a *RedisService) Close() error {
	return a.rdb.Close()
}
