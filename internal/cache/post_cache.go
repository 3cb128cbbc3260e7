package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"blog-api/internal/dto"
)

const publishedPostsKey = "posts:published"

// PostCache caches the published post listing
type PostCache interface {
	GetPublished(ctx context.Context) ([]*dto.PostSummaryResponse, bool)
	SetPublished(ctx context.Context, posts []*dto.PostSummaryResponse)
	InvalidatePublished(ctx context.Context)
}

type redisPostCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisPostCache returns a redis backed PostCache.
// A nil client yields a cache that never hits, so the service runs without redis.
func NewRedisPostCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) PostCache {
	return &redisPostCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisPostCache) GetPublished(ctx context.Context) ([]*dto.PostSummaryResponse, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, publishedPostsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Failed to read post cache", zap.Error(err))
		}
		return nil, false
	}

	var posts []*dto.PostSummaryResponse
	if err := json.Unmarshal(data, &posts); err != nil {
		c.logger.Warn("Discarding undecodable post cache entry", zap.Error(err))
		return nil, false
	}
	return posts, true
}

func (c *redisPostCache) SetPublished(ctx context.Context, posts []*dto.PostSummaryResponse) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(posts)
	if err != nil {
		c.logger.Warn("Failed to encode post cache entry", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, publishedPostsKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to write post cache", zap.Error(err))
	}
}

func (c *redisPostCache) InvalidatePublished(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, publishedPostsKey).Err(); err != nil {
		c.logger.Warn("Failed to invalidate post cache", zap.Error(err))
	}
}
