package search

import (
	"context"
	"encoding/json"

	"github.com/tgoubier/moments-ms-go/internal/logger"
	"github.com/tgoubier/moments-ms-go/internal/model"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

type videoListerSrv struct {
	store port.MomentStore
}

// compile-time check: *videoListerSrv must satisfy port.VideoLister
var _ port.VideoLister = (*videoListerSrv)(nil)

// NewVideoLister constructs the video listing operation.
func NewVideoLister(store port.MomentStore) port.VideoLister {
	return &videoListerSrv{store: store}
}

func (s *videoListerSrv) ListVideos(ctx context.Context) ([]model.VideoWithCount, error) {
	return s.store.ListVideos(ctx)
}

type videoGetterSrv struct {
	store port.MomentStore
	cache port.Cache
}

// compile-time check: *videoGetterSrv must satisfy port.VideoGetter
var _ port.VideoGetter = (*videoGetterSrv)(nil)

// NewVideoGetter constructs the per-video detail operation. Results are
// cached until the video's next ingestion invalidates them.
func NewVideoGetter(store port.MomentStore, cache port.Cache) port.VideoGetter {
	return &videoGetterSrv{store: store, cache: cache}
}

func (s *videoGetterSrv) GetVideoDetails(ctx context.Context, videoID string) (port.VideoDetailsOutput, error) {
	if raw, err := s.cache.GetVideoDetails(ctx, videoID); err == nil && raw != nil {
		var out port.VideoDetailsOutput
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		logger.Warnf(ctx, "discarding corrupt cache entry for video #%s", videoID)
	}

	video, err := s.store.GetVideo(ctx, videoID)
	if err != nil {
		return port.VideoDetailsOutput{}, err
	}

	moments, err := s.store.FetchMomentsForVideo(ctx, videoID)
	if err != nil {
		return port.VideoDetailsOutput{}, err
	}
	if moments == nil {
		moments = []model.Moment{}
	}

	out := port.VideoDetailsOutput{Video: *video, Moments: moments, Count: len(moments)}

	if raw, err := json.Marshal(out); err == nil {
		s.cache.SetVideoDetails(ctx, videoID, raw)
	}

	return out, nil
}
