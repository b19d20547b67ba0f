package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tgoubier/moments-ms-go/internal/port"
)

// ErrNoKeyframeImage is returned when a moment has no stored keyframe.
var ErrNoKeyframeImage = errors.New("search: moment has no keyframe image")

// KeyframeURLTTL bounds how long a presigned keyframe link stays valid.
const KeyframeURLTTL = 15 * time.Minute

type keyframeGetterSrv struct {
	store  port.MomentStore
	strg   port.Storage
	bucket string
}

// compile-time check: *keyframeGetterSrv must satisfy port.KeyframeURLGetter
var _ port.KeyframeURLGetter = (*keyframeGetterSrv)(nil)

// NewKeyframeURLGetter constructs the keyframe image link operation.
func NewKeyframeURLGetter(store port.MomentStore, strg port.Storage, bucket string) port.KeyframeURLGetter {
	return &keyframeGetterSrv{store: store, strg: strg, bucket: bucket}
}

func (s *keyframeGetterSrv) GetKeyframeURL(ctx context.Context, momentID string) (port.KeyframeURLOutput, error) {
	moment, err := s.store.GetMoment(ctx, momentID)
	if err != nil {
		return port.KeyframeURLOutput{}, err
	}
	if moment.KeyframeImagePath == nil || *moment.KeyframeImagePath == "" {
		return port.KeyframeURLOutput{}, ErrNoKeyframeImage
	}

	exists, err := s.strg.FileExists(ctx, s.bucket, *moment.KeyframeImagePath)
	if err != nil {
		return port.KeyframeURLOutput{}, fmt.Errorf("error checking keyframe %q: %w", *moment.KeyframeImagePath, err)
	}
	if !exists {
		return port.KeyframeURLOutput{}, ErrNoKeyframeImage
	}

	url, err := s.strg.GeneratePresignedDownloadURL(ctx, s.bucket, *moment.KeyframeImagePath, KeyframeURLTTL)
	if err != nil {
		return port.KeyframeURLOutput{}, fmt.Errorf("error generating presigned download URL: %w", err)
	}

	return port.KeyframeURLOutput{MomentID: momentID, URL: url}, nil
}
