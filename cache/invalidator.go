// Package cache removes derived-data entries from Redis after a reload so
// no reader observes pre-load state.
package cache

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var graphPatterns = []string{"graph:root:*", "graph:children:*", "graph:node:*"}

const statPattern = "stat:*"

// Stats counts the deleted cache keys by category.
type Stats struct {
	GraphKeys int
	StatKeys  int
}

// Total returns the overall number of deleted keys.
func (s Stats) Total() int {
	return s.GraphKeys + s.StatKeys
}

// Invalidator deletes all keys in the derived-data namespaces. Cache
// problems never fail the load: every error degrades to a warning.
type Invalidator struct {
	Client *redis.Client
	Logger *zap.Logger
}

// NewInvalidator creates an invalidator; client may be nil when Redis is
// unreachable, in which case Clear is a logged no-op.
func NewInvalidator(client *redis.Client, logger *zap.Logger) *Invalidator {
	return &Invalidator{Client: client, Logger: logger}
}

// Clear deletes all keys matching the graph and statistics namespaces and
// reports the per-category counts.
func (i *Invalidator) Clear(ctx context.Context) Stats {
	var stats Stats
	if i.Client == nil {
		i.Logger.Warn("Redis client unavailable, skipping cache invalidation")
		return stats
	}

	for _, pattern := range graphPatterns {
		stats.GraphKeys += i.deleteByPattern(ctx, pattern)
	}
	stats.StatKeys = i.deleteByPattern(ctx, statPattern)

	if stats.Total() > 0 {
		i.Logger.Info("Cache cleared",
			zap.Int("total", stats.Total()),
			zap.Int("graph_keys", stats.GraphKeys),
			zap.Int("stat_keys", stats.StatKeys))
	} else {
		i.Logger.Info("No cache entries to clear")
	}
	return stats
}

func (i *Invalidator) deleteByPattern(ctx context.Context, pattern string) int {
	keys, err := i.Client.Keys(ctx, pattern).Result()
	if err != nil {
		i.Logger.Warn("Cache key enumeration failed",
			zap.String("pattern", pattern), zap.Error(err))
		return 0
	}
	if len(keys) == 0 {
		return 0
	}
	deleted, err := i.Client.Del(ctx, keys...).Result()
	if err != nil {
		i.Logger.Warn("Cache key deletion failed",
			zap.String("pattern", pattern), zap.Error(err))
		return 0
	}
	return int(deleted)
}
