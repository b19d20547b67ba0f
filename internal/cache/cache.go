package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tgoubier/moments-ms-go/internal/logger"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

const (
	statsTTL        = 5 * time.Minute
	videoDetailsTTL = 10 * time.Minute
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetStats(ctx context.Context) ([]byte, error) {
	val, err := c.client.Get(ctx, statsKey(false)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagStats(ctx context.Context) (string, error) {
	val, err := c.client.Get(ctx, statsKey(true)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetStats(ctx context.Context, data []byte) {
	if err := c.client.Set(ctx, statsKey(false), data, statsTTL).Err(); err != nil {
		logger.Warnf(ctx, "redis set failed for stats: %v", err)
	}
}

func (c *Cache) SetEtagStats(ctx context.Context, etag string) {
	if err := c.client.Set(ctx, statsKey(true), etag, statsTTL).Err(); err != nil {
		logger.Warnf(ctx, "redis set failed for stats etag: %v", err)
	}
}

func (c *Cache) GetVideoDetails(ctx context.Context, videoID string) ([]byte, error) {
	val, err := c.client.Get(ctx, videoKey(videoID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetVideoDetails(ctx context.Context, videoID string, data []byte) {
	if err := c.client.Set(ctx, videoKey(videoID), data, videoDetailsTTL).Err(); err != nil {
		logger.Warnf(ctx, "redis set failed for video #%s: %v", videoID, err)
	}
}

// InvalidateVideo drops the video's details and both stats entries;
// an ingestion changes the aggregate counts too.
func (c *Cache) InvalidateVideo(ctx context.Context, videoID string) error {
	if err := c.client.Del(ctx, videoKey(videoID), statsKey(false), statsKey(true)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func statsKey(isEtag bool) string {
	if isEtag {
		return "etag:stats"
	}
	return "stats"
}

func videoKey(videoID string) string {
	return "video:" + videoID
}
