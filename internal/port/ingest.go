package port

import (
	"context"

	"github.com/tgoubier/moments-ms-go/internal/db"
)

// Report is the decoded per-video analysis artifact consumed by the
// ingestion pipeline.
type Report struct {
	VideoID                 string           `json:"video_id" validate:"required"`
	OriginalFilename        string           `json:"original_filename"`
	CompressedFilename      string           `json:"compressed_filename"`
	DurationSeconds         float64          `json:"duration_seconds"`
	FPS                     float64          `json:"fps"`
	CompressedFileSizeBytes int64            `json:"compressed_file_size_bytes"`
	ProcessingDateUTC       string           `json:"processing_date_utc"`
	SceneChangeTimestamps   []float64        `json:"scene_change_timestamps"`
	KeyframesAnalyzedCount  int              `json:"keyframes_analyzed_count"`
	AnalysisStatus          string           `json:"analysis_status"`
	ErrorMessage            *string          `json:"error_message"`
	AnalyzedKeyframes       []KeyframeReport `json:"analyzed_keyframes"`
}

// KeyframeReport is one analyzed keyframe inside a report. Absent
// fields are defaulted at ingestion time.
type KeyframeReport struct {
	MomentID             string         `json:"moment_id"`
	VideoID              string         `json:"video_id"`
	FrameIdentifier      string         `json:"frame_identifier"`
	TimestampSeconds     float64        `json:"timestamp_seconds"`
	KeyframeImagePath    *string        `json:"keyframe_image_path"`
	ClipEmbedding        []float32      `json:"clip_embedding"`
	DetectedObjectNames  []string       `json:"detected_object_names"`
	ExtractedSearchWords []string       `json:"extracted_search_words"`
	AverageColorRGB      []int          `json:"average_color_rgb"`
	DetailedFeatures     map[string]any `json:"detailed_features"`
	ExtractionSuccess    *bool          `json:"extraction_success"`
}

type IngestOutput struct {
	VideoID         string `json:"video_id"`
	MomentsIngested int    `json:"moments_ingested"`
}

type ReportResult struct {
	VideoID         string `json:"video_id"`
	OK              bool   `json:"ok"`
	Error           string `json:"error,omitempty"`
	MomentsIngested int    `json:"moments_ingested"`
}

type BatchOutput struct {
	BatchID      db.UUID        `json:"batch_id"`
	Succeeded    int            `json:"succeeded"`
	Failed       int            `json:"failed"`
	TotalMoments int            `json:"total_moments"`
	Results      []ReportResult `json:"results"`
}

// ReportIngester transactionally replaces a video's row and its full
// moment set from one analysis report.
type ReportIngester interface {
	IngestReport(ctx context.Context, report Report) (IngestOutput, error)
}

// BatchIngester processes many reports independently and tallies the
// outcome per report.
type BatchIngester interface {
	IngestBatch(ctx context.Context, reports []Report) (BatchOutput, error)
}
