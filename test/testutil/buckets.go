package testutil

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// SetupTestBucket (re)creates the given bucket and returns a cleanup
// function that empties and removes it.
func SetupTestBucket(client *minio.Client, bucket string) (func() error, error) {
	ctx := context.Background()

	// if it already exists, drop it
	if err := client.RemoveBucket(ctx, bucket); err != nil {
		// ignore any errors here (e.g., bucket not found)
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		// if it already exists, skip; otherwise fail
		exists, err2 := client.BucketExists(ctx, bucket)
		if err2 != nil || !exists {
			return nil, fmt.Errorf("could not create bucket %q: %w", bucket, err)
		}
	}

	cleanup := func() error {
		// remove all objects and then the bucket itself
		for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
			if obj.Err != nil {
				continue
			}
			_ = client.RemoveObject(ctx, bucket, obj.Key, minio.RemoveObjectOptions{})
		}
		if err := client.RemoveBucket(ctx, bucket); err != nil {
			return fmt.Errorf("could not remove bucket %q: %w", bucket, err)
		}
		return nil
	}

	return cleanup, nil
}
