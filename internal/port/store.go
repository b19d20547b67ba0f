package port

import (
	"context"
	"errors"

	"github.com/tgoubier/moments-ms-go/internal/model"
)

var (
	// ErrStoreUnavailable wraps connectivity or transaction failures of
	// the underlying database.
	ErrStoreUnavailable = errors.New("store: unavailable")
	// ErrVideoNotFound is returned for lookups of an absent video id.
	ErrVideoNotFound = errors.New("store: video not found")
	// ErrMomentNotFound is returned for lookups of an absent moment id.
	ErrMomentNotFound = errors.New("store: moment not found")
)

// MomentStore is the read/write boundary over persisted videos and
// moments. Reads are snapshot-style; writes happen inside a
// caller-controlled transaction via InTransaction.
type MomentStore interface {
	// FetchAllMoments returns every moment, joined with its parent
	// video's filename when withVideo is true.
	FetchAllMoments(ctx context.Context, withVideo bool) ([]model.MomentWithVideo, error)
	FetchMomentsForVideo(ctx context.Context, videoID string) ([]model.Moment, error)
	GetVideo(ctx context.Context, videoID string) (*model.Video, error)
	GetMoment(ctx context.Context, momentID string) (*model.Moment, error)
	ListVideos(ctx context.Context) ([]model.VideoWithCount, error)
	Stats(ctx context.Context) (*model.StoreStats, error)
	// InTransaction runs fn inside a single transaction; any error from
	// fn rolls the whole transaction back.
	InTransaction(ctx context.Context, fn func(tx MomentTx) error) error
}

// MomentTx is the mutation surface available inside a store transaction.
type MomentTx interface {
	// UpsertVideo inserts the video row or replaces every mutable field
	// on conflict, preserving the identifier and creation time.
	UpsertVideo(ctx context.Context, video *model.Video) error
	// ReplaceMomentsForVideo deletes all moments owned by videoID and
	// inserts the given set.
	ReplaceMomentsForVideo(ctx context.Context, videoID string, moments []model.Moment) error
}
