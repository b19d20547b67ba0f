package testutil

import (
	"fmt"
	"time"

	"github.com/tgoubier/moments-ms-go/internal/port"
)

// EmbeddingDim matches the clip_embedding column of the schema.
const EmbeddingDim = 768

// Embedding768 builds a unit vector pointing along the given axis, so
// two fixtures with different axes are exactly orthogonal.
func Embedding768(axis int) []float32 {
	vec := make([]float32, EmbeddingDim)
	vec[axis%EmbeddingDim] = 1
	return vec
}

// GenerateReport builds a complete analysis report with the given
// number of keyframes, spaced five seconds apart.
func GenerateReport(videoID string, momentCount int) port.Report {
	keyframes := make([]port.KeyframeReport, 0, momentCount)
	for i := 0; i < momentCount; i++ {
		path := fmt.Sprintf("%s/frame_%04d.jpg", videoID, i)
		keyframes = append(keyframes, port.KeyframeReport{
			MomentID:             fmt.Sprintf("%s_frame_%d", videoID, i),
			VideoID:              videoID,
			FrameIdentifier:      fmt.Sprintf("frame_%012d", i),
			TimestampSeconds:     float64(i) * 5,
			KeyframeImagePath:    &path,
			ClipEmbedding:        Embedding768(i),
			DetectedObjectNames:  []string{"person", "tree"},
			ExtractedSearchWords: []string{"sunset", "beach"},
			AverageColorRGB:      []int{10, 20, 30},
			DetailedFeatures:     map[string]any{"sharpness": 0.8},
		})
	}

	return port.Report{
		VideoID:                videoID,
		OriginalFilename:       videoID + ".mp4",
		CompressedFilename:     "compressed_for_web.mp4",
		DurationSeconds:        float64(momentCount) * 5,
		FPS:                    25,
		ProcessingDateUTC:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
		SceneChangeTimestamps:  []float64{0, 2.5},
		KeyframesAnalyzedCount: momentCount,
		AnalysisStatus:         "completed",
		AnalyzedKeyframes:      keyframes,
	}
}
