package cache

import (
	"context"

	"github.com/tgoubier/moments-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetStats(ctx context.Context) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagStats(ctx context.Context) (string, error) {
	return "", nil
}

func (n *NoopCache) SetStats(ctx context.Context, data []byte) {}

func (n *NoopCache) SetEtagStats(ctx context.Context, etag string) {}

func (n *NoopCache) GetVideoDetails(ctx context.Context, videoID string) ([]byte, error) {
	return nil, nil
}

func (n *NoopCache) SetVideoDetails(ctx context.Context, videoID string, data []byte) {}

func (n *NoopCache) InvalidateVideo(ctx context.Context, videoID string) error { return nil }
