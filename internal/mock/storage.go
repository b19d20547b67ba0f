package mock

import (
	"context"
	"time"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	ExistsOut bool

	// captured inputs
	ObjectKey string
	TTL       time.Duration

	// errors
	InitBucketErr           error
	FileExistsErr           error
	GenerateDownloadLinkErr error

	// call flags
	InitBucketCalled           bool
	FileExistsCalled           bool
	GenerateDownloadLinkCalled bool
}

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	m.FileExistsCalled = true
	m.ObjectKey = fileKey
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	return m.ExistsOut, nil
}

func (m *Storage) GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	m.GenerateDownloadLinkCalled = true
	m.ObjectKey = fileKey
	m.TTL = expiry
	if m.GenerateDownloadLinkErr != nil {
		return "", m.GenerateDownloadLinkErr
	}
	return "https://example.com/download", nil
}
