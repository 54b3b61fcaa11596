package storage

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"scholar-graph/config"
)

// NewRedisClient connects to Redis and pings it. The cache is a soft
// dependency: when the ping fails the client is discarded and nil is
// returned, which downgrades cache invalidation to a logged skip.
func NewRedisClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, cache invalidation will be skipped",
			zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = client.Close()
		return nil
	}
	return client
}
