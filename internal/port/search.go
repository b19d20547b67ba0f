package port

import (
	"context"

	"github.com/tgoubier/moments-ms-go/internal/model"
)

// SearchResult is one ranked moment, carrying the computed score field
// of the query kind that produced it.
type SearchResult struct {
	model.Moment
	OriginalFilename string   `json:"original_filename,omitempty"`
	ColorDistance    *float64 `json:"color_distance,omitempty"`
	SimilarityScore  *float64 `json:"similarity_score,omitempty"`
	TimeDiff         *float64 `json:"time_diff,omitempty"`
	TotalScore       *float64 `json:"total_score,omitempty"`
}

// SearchOutput is a ranked, capped result list. Count is the number of
// matching moments before the limit was applied.
type SearchOutput struct {
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
}

type KeywordSearchInput struct {
	Keywords []string `json:"keywords" validate:"required,min=1,dive,required"`
	MatchAll bool     `json:"match_all"`
	Limit    int      `json:"limit" validate:"omitempty,min=1"`
}

type ObjectSearchInput struct {
	Objects  []string `json:"objects" validate:"required,min=1,dive,required"`
	MatchAll bool     `json:"match_all"`
	Limit    int      `json:"limit" validate:"omitempty,min=1"`
}

type TextSearchInput struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit" validate:"omitempty,min=1"`
}

type ColorSearchInput struct {
	Color     []int    `json:"color" validate:"required,len=3,dive,gte=0,lte=255"`
	Threshold *float64 `json:"threshold" validate:"omitempty,gte=0"`
	Limit     int      `json:"limit" validate:"omitempty,min=1"`
}

type EmbeddingSearchInput struct {
	Embedding []float32 `json:"embedding" validate:"required,min=1"`
	Threshold *float64  `json:"threshold" validate:"omitempty,gte=-1,lte=1"`
	Limit     int       `json:"limit" validate:"omitempty,min=1"`
}

type TemporalSearchInput struct {
	StartTime float64  `json:"start_time" validate:"gte=0"`
	EndTime   *float64 `json:"end_time" validate:"required,gte=0"`
	VideoID   string   `json:"video_id"`
	Limit     int      `json:"limit" validate:"omitempty,min=1"`
}

type SegmentSearchInput struct {
	VideoID   string   `json:"video_id" validate:"required"`
	Timestamp *float64 `json:"timestamp" validate:"required,gte=0"`
	Tolerance *float64 `json:"tolerance" validate:"omitempty,gte=0"`
}

type MultimodalSearchInput struct {
	Text                string    `json:"text"`
	Color               []int     `json:"color" validate:"omitempty,len=3,dive,gte=0,lte=255"`
	Threshold           *float64  `json:"threshold" validate:"omitempty,gte=0"`
	Embedding           []float32 `json:"embedding"`
	SimilarityThreshold *float64  `json:"similarity_threshold" validate:"omitempty,gte=-1,lte=1"`
	Limit               int       `json:"limit" validate:"omitempty,min=1"`
}

type KeywordSearcher interface {
	SearchKeywords(ctx context.Context, in KeywordSearchInput) (SearchOutput, error)
}

type ObjectSearcher interface {
	SearchObjects(ctx context.Context, in ObjectSearchInput) (SearchOutput, error)
}

type TextSearcher interface {
	SearchText(ctx context.Context, in TextSearchInput) (SearchOutput, error)
}

type ColorSearcher interface {
	SearchColor(ctx context.Context, in ColorSearchInput) (SearchOutput, error)
}

type EmbeddingSearcher interface {
	SearchEmbedding(ctx context.Context, in EmbeddingSearchInput) (SearchOutput, error)
}

type TemporalSearcher interface {
	SearchTemporal(ctx context.Context, in TemporalSearchInput) (SearchOutput, error)
}

type SegmentSearcher interface {
	SearchSegment(ctx context.Context, in SegmentSearchInput) (SearchOutput, error)
}

type MultimodalSearcher interface {
	SearchMultimodal(ctx context.Context, in MultimodalSearchInput) (SearchOutput, error)
}

// StatsGetter serves the aggregate store statistics.
type StatsGetter interface {
	GetStats(ctx context.Context) (*model.StoreStats, error)
}

// VideoLister lists all videos with their moment counts.
type VideoLister interface {
	ListVideos(ctx context.Context) ([]model.VideoWithCount, error)
}

type VideoDetailsOutput struct {
	Video   model.Video    `json:"video"`
	Moments []model.Moment `json:"moments"`
	Count   int            `json:"count"`
}

// VideoGetter returns one video and its full moment set.
type VideoGetter interface {
	GetVideoDetails(ctx context.Context, videoID string) (VideoDetailsOutput, error)
}

type KeyframeURLOutput struct {
	MomentID string `json:"moment_id"`
	URL      string `json:"url"`
}

// KeyframeURLGetter returns a presigned download URL for a moment's
// stored keyframe image.
type KeyframeURLGetter interface {
	GetKeyframeURL(ctx context.Context, momentID string) (KeyframeURLOutput, error)
}
