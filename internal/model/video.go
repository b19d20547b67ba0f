package model

import (
	"time"

	"github.com/lib/pq"
)

type AnalysisStatus string

const (
	AnalysisStatusPending   AnalysisStatus = "pending"
	AnalysisStatusCompleted AnalysisStatus = "completed"
	AnalysisStatusFailed    AnalysisStatus = "failed"
	AnalysisStatusUnknown   AnalysisStatus = "unknown"
)

type Video struct {
	VideoID                 string          `json:"video_id"`
	OriginalFilename        string          `json:"original_filename"`
	CompressedFilename      *string         `json:"compressed_filename,omitempty"`
	DurationSeconds         float64         `json:"duration_seconds"`
	FPS                     float64         `json:"fps"`
	CompressedFileSizeBytes int64           `json:"compressed_file_size_bytes"`
	ProcessingDateUTC       *time.Time      `json:"processing_date_utc,omitempty"`
	SceneChangeTimestamps   pq.Float64Array `json:"scene_change_timestamps"`
	KeyframesAnalyzedCount  int             `json:"keyframes_analyzed_count"`
	AnalysisStatus          AnalysisStatus  `json:"analysis_status"`
	ErrorMessage            *string         `json:"error_message,omitempty"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// VideoWithCount augments a video with its moment count for listings.
type VideoWithCount struct {
	Video
	MomentCount int `json:"moment_count"`
}

// StoreStats is the aggregate snapshot served by the stats endpoint.
type StoreStats struct {
	Videos                 int     `json:"videos"`
	Moments                int     `json:"moments"`
	MomentsWithColor       int     `json:"moments_with_color"`
	MomentsWithEmbedding   int     `json:"moments_with_embedding"`
	TotalDurationSeconds   float64 `json:"total_duration_seconds"`
	AverageDurationSeconds float64 `json:"average_duration_seconds"`
}
