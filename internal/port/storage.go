package port

import (
	"context"
	"time"
)

// Storage defines the keyframe image storage operations the service
// needs: keyframes are written by the analysis pipeline upstream, so
// only the read side is exposed here.
type Storage interface {
	InitBucket(bucket string) error
	FileExists(ctx context.Context, bucket, fileKey string) (bool, error)
	GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error)
}
