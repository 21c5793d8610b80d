package sequence

import (
	"context"
	"time"

	"marketplace-core/internal/pkg/config"
	"marketplace-core/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisAllocator keeps one counter key per sequence name. INCR creates a missing key at 1.
type RedisAllocator struct {
	client *redis.Client
	prefix string
}

func NewRedisAllocator(client *redis.Client, prefix string) *RedisAllocator {
	return &RedisAllocator{client: client, prefix: prefix}
}

func (a *RedisAllocator) Next(ctx context.Context, name string) (int64, error) {
	v, err := a.client.Incr(ctx, a.prefix+name).Result()
	if err != nil {
		return 0, errs.Wrap(err, "redis incr "+a.prefix+name)
	}
	return v, nil
}

// NewRedisClient connects and pings with a short timeout.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "redis ping")
	}
	return client, nil
}
