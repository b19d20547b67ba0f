package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/tgoubier/moments-ms-go/internal/api_context"
	"github.com/tgoubier/moments-ms-go/internal/logger"
	"github.com/tgoubier/moments-ms-go/internal/model"
	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

const (
	defaultCompressedFilename = "compressed_for_web.mp4"
	defaultFPS                = 25.0
)

type reportIngesterSrv struct {
	store port.MomentStore
	cache port.Cache
}

// compile-time check: *reportIngesterSrv must satisfy port.ReportIngester
var _ port.ReportIngester = (*reportIngesterSrv)(nil)

// NewReportIngester constructs the transactional report ingestion
// operation.
func NewReportIngester(store port.MomentStore, cache port.Cache) port.ReportIngester {
	return &reportIngesterSrv{store: store, cache: cache}
}

// IngestReport replaces the video row and its full moment set from one
// analysis report, inside a single transaction. Re-ingesting the same
// report is idempotent.
func (s *reportIngesterSrv) IngestReport(ctx context.Context, report port.Report) (port.IngestOutput, error) {
	if verr := validation.Check(report); verr != nil {
		return port.IngestOutput{}, verr
	}
	ctx = api_context.WithVideoID(ctx, report.VideoID)

	video := videoFromReport(ctx, report)
	moments := momentsFromReport(report)

	err := s.store.InTransaction(ctx, func(tx port.MomentTx) error {
		if err := tx.UpsertVideo(ctx, video); err != nil {
			return err
		}
		return tx.ReplaceMomentsForVideo(ctx, report.VideoID, moments)
	})
	if err != nil {
		return port.IngestOutput{}, err
	}

	if err := s.cache.InvalidateVideo(ctx, report.VideoID); err != nil {
		logger.Warnf(ctx, "could not invalidate cache after ingestion: %v", err)
	}

	logger.Info(ctx, "report ingested", "moments", len(moments))
	return port.IngestOutput{VideoID: report.VideoID, MomentsIngested: len(moments)}, nil
}

func videoFromReport(ctx context.Context, report port.Report) *model.Video {
	originalFilename := report.OriginalFilename
	if originalFilename == "" {
		originalFilename = report.VideoID + ".mp4"
	}
	compressedFilename := report.CompressedFilename
	if compressedFilename == "" {
		compressedFilename = defaultCompressedFilename
	}
	fps := report.FPS
	if fps == 0 {
		fps = defaultFPS
	}
	timestamps := report.SceneChangeTimestamps
	if timestamps == nil {
		timestamps = []float64{}
	}

	return &model.Video{
		VideoID:                 report.VideoID,
		OriginalFilename:        originalFilename,
		CompressedFilename:      &compressedFilename,
		DurationSeconds:         report.DurationSeconds,
		FPS:                     fps,
		CompressedFileSizeBytes: report.CompressedFileSizeBytes,
		ProcessingDateUTC:       parseProcessingDate(ctx, report.ProcessingDateUTC),
		SceneChangeTimestamps:   pq.Float64Array(timestamps),
		KeyframesAnalyzedCount:  report.KeyframesAnalyzedCount,
		AnalysisStatus:          normaliseStatus(report.AnalysisStatus),
		ErrorMessage:            report.ErrorMessage,
	}
}

func momentsFromReport(report port.Report) []model.Moment {
	moments := make([]model.Moment, 0, len(report.AnalyzedKeyframes))
	for i, kf := range report.AnalyzedKeyframes {
		momentID := kf.MomentID
		if momentID == "" {
			momentID = fmt.Sprintf("%s_frame_%d", report.VideoID, i)
		}
		frameIdentifier := kf.FrameIdentifier
		if frameIdentifier == "" {
			frameIdentifier = fmt.Sprintf("frame_%012d", i)
		}

		objects := kf.DetectedObjectNames
		if objects == nil {
			objects = []string{}
		}
		words := kf.ExtractedSearchWords
		if words == nil {
			words = []string{}
		}

		color := model.NewRGB(0, 0, 0)
		if len(kf.AverageColorRGB) == 3 {
			color = model.NewRGB(uint8(kf.AverageColorRGB[0]), uint8(kf.AverageColorRGB[1]), uint8(kf.AverageColorRGB[2]))
		}

		var embedding model.Embedding
		if len(kf.ClipEmbedding) > 0 {
			embedding = model.NewEmbedding(kf.ClipEmbedding)
		}

		features := model.FeatureMap(kf.DetailedFeatures)
		if features == nil {
			features = model.FeatureMap{}
		}

		extractionSuccess := true
		if kf.ExtractionSuccess != nil {
			extractionSuccess = *kf.ExtractionSuccess
		}

		moments = append(moments, model.Moment{
			MomentID:             momentID,
			VideoID:              report.VideoID,
			FrameIdentifier:      frameIdentifier,
			TimestampSeconds:     kf.TimestampSeconds,
			KeyframeImagePath:    kf.KeyframeImagePath,
			ClipEmbedding:        embedding,
			DetectedObjectNames:  pq.StringArray(objects),
			ExtractedSearchWords: pq.StringArray(words),
			AverageColorRGB:      color,
			DetailedFeatures:     features,
			ExtractionSuccess:    extractionSuccess,
		})
	}
	return moments
}

// parseProcessingDate tolerates both a trailing Z and a naive local
// timestamp; an unparseable date is dropped, never fatal.
func parseProcessingDate(ctx context.Context, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		ts, err = time.Parse("2006-01-02T15:04:05", raw)
	}
	if err != nil {
		logger.Warnf(ctx, "could not parse processing date %q: %v", raw, err)
		return nil
	}
	return &ts
}

func normaliseStatus(raw string) model.AnalysisStatus {
	switch model.AnalysisStatus(raw) {
	case model.AnalysisStatusPending, model.AnalysisStatusCompleted, model.AnalysisStatusFailed:
		return model.AnalysisStatus(raw)
	case "":
		return model.AnalysisStatusCompleted
	default:
		return model.AnalysisStatusUnknown
	}
}
