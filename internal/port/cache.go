package port

import "context"

// Cache provides caching for stats and per-video detail payloads.
// Implementations must tolerate being bypassed: a miss returns nil
// data and no error.
type Cache interface {
	GetStats(ctx context.Context) ([]byte, error)
	GetEtagStats(ctx context.Context) (string, error)
	SetStats(ctx context.Context, data []byte)
	SetEtagStats(ctx context.Context, etag string)
	GetVideoDetails(ctx context.Context, videoID string) ([]byte, error)
	SetVideoDetails(ctx context.Context, videoID string, data []byte)
	// InvalidateVideo drops the video's cached details and the stats
	// entries; called after every successful ingestion of that video.
	InvalidateVideo(ctx context.Context, videoID string) error
}
