package model

import (
	"time"

	"github.com/lib/pq"
)

// Moment is one analyzed keyframe of a video, with its derived
// text, color and embedding features. The embedding is never
// serialised back to clients.
type Moment struct {
	MomentID             string         `json:"moment_id"`
	VideoID              string         `json:"video_id"`
	FrameIdentifier      string         `json:"frame_identifier"`
	TimestampSeconds     float64        `json:"timestamp_seconds"`
	KeyframeImagePath    *string        `json:"keyframe_image_path,omitempty"`
	ClipEmbedding        Embedding      `json:"-"`
	DetectedObjectNames  pq.StringArray `json:"detected_object_names"`
	ExtractedSearchWords pq.StringArray `json:"extracted_search_words"`
	AverageColorRGB      RGB            `json:"average_color_rgb"`
	DetailedFeatures     FeatureMap     `json:"detailed_features,omitempty"`
	ExtractionSuccess    bool           `json:"extraction_success"`
	CreatedAt            time.Time      `json:"created_at"`
}

// MomentWithVideo joins a moment with its parent video's filename,
// the shape every search result is built from.
type MomentWithVideo struct {
	Moment
	OriginalFilename string `json:"original_filename"`
}
