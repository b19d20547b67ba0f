package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/tgoubier/moments-ms-go/internal/model"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

// MomentStore is the PostgreSQL implementation of port.MomentStore.
type MomentStore struct {
	db *sql.DB
}

// compile-time check: *MomentStore must satisfy port.MomentStore
var _ port.MomentStore = (*MomentStore)(nil)

func NewMomentStore(db *sql.DB) *MomentStore {
	return &MomentStore{db: db}
}

const momentColumns = `m.moment_id, m.video_id, m.frame_identifier, m.timestamp_seconds,
       m.keyframe_image_path, m.clip_embedding, m.detected_object_names,
       m.extracted_search_words, m.average_color_rgb, m.detailed_features,
       m.extraction_success, m.created_at`

func scanMoment(scanner interface{ Scan(...any) error }, m *model.Moment, extra ...any) error {
	dest := []any{
		&m.MomentID, &m.VideoID, &m.FrameIdentifier, &m.TimestampSeconds,
		&m.KeyframeImagePath, &m.ClipEmbedding, &m.DetectedObjectNames,
		&m.ExtractedSearchWords, &m.AverageColorRGB, &m.DetailedFeatures,
		&m.ExtractionSuccess, &m.CreatedAt,
	}
	dest = append(dest, extra...)
	return scanner.Scan(dest...)
}

func (s *MomentStore) FetchAllMoments(ctx context.Context, withVideo bool) ([]model.MomentWithVideo, error) {
	query := `SELECT ` + momentColumns + ` FROM video_moments m`
	if withVideo {
		query = `SELECT ` + momentColumns + `, v.original_filename
      FROM video_moments m
      JOIN videos v ON m.video_id = v.video_id`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching moments: %v", port.ErrStoreUnavailable, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close moments cursor: %v", err)
		}
	}()

	var moments []model.MomentWithVideo
	for rows.Next() {
		var mv model.MomentWithVideo
		if withVideo {
			err = scanMoment(rows, &mv.Moment, &mv.OriginalFilename)
		} else {
			err = scanMoment(rows, &mv.Moment)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: scanning moment: %v", port.ErrStoreUnavailable, err)
		}
		moments = append(moments, mv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating moments: %v", port.ErrStoreUnavailable, err)
	}

	return moments, nil
}

func (s *MomentStore) FetchMomentsForVideo(ctx context.Context, videoID string) ([]model.Moment, error) {
	query := `SELECT ` + momentColumns + `
      FROM video_moments m
      WHERE m.video_id = $1
      ORDER BY m.timestamp_seconds`

	rows, err := s.db.QueryContext(ctx, query, videoID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching moments for video %q: %v", port.ErrStoreUnavailable, videoID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close moments cursor: %v", err)
		}
	}()

	var moments []model.Moment
	for rows.Next() {
		var m model.Moment
		if err := scanMoment(rows, &m); err != nil {
			return nil, fmt.Errorf("%w: scanning moment: %v", port.ErrStoreUnavailable, err)
		}
		moments = append(moments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating moments: %v", port.ErrStoreUnavailable, err)
	}

	return moments, nil
}

func (s *MomentStore) GetVideo(ctx context.Context, videoID string) (*model.Video, error) {
	const query = `
      SELECT video_id, original_filename, compressed_filename, duration_seconds,
             fps, compressed_file_size_bytes, processing_date_utc,
             scene_change_timestamps, keyframes_analyzed_count, analysis_status,
             error_message, created_at, updated_at
      FROM videos
      WHERE video_id = $1`

	row := s.db.QueryRowContext(ctx, query, videoID)
	var v model.Video
	if err := row.Scan(
		&v.VideoID, &v.OriginalFilename, &v.CompressedFilename, &v.DurationSeconds,
		&v.FPS, &v.CompressedFileSizeBytes, &v.ProcessingDateUTC,
		&v.SceneChangeTimestamps, &v.KeyframesAnalyzedCount, &v.AnalysisStatus,
		&v.ErrorMessage, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, port.ErrVideoNotFound
		}
		return nil, fmt.Errorf("%w: fetching video %q: %v", port.ErrStoreUnavailable, videoID, err)
	}

	return &v, nil
}

func (s *MomentStore) GetMoment(ctx context.Context, momentID string) (*model.Moment, error) {
	query := `SELECT ` + momentColumns + `
      FROM video_moments m
      WHERE m.moment_id = $1`

	row := s.db.QueryRowContext(ctx, query, momentID)
	var m model.Moment
	if err := scanMoment(row, &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, port.ErrMomentNotFound
		}
		return nil, fmt.Errorf("%w: fetching moment %q: %v", port.ErrStoreUnavailable, momentID, err)
	}

	return &m, nil
}

func (s *MomentStore) ListVideos(ctx context.Context) ([]model.VideoWithCount, error) {
	const query = `
      SELECT v.video_id, v.original_filename, v.compressed_filename, v.duration_seconds,
             v.fps, v.compressed_file_size_bytes, v.processing_date_utc,
             v.scene_change_timestamps, v.keyframes_analyzed_count, v.analysis_status,
             v.error_message, v.created_at, v.updated_at,
             COUNT(m.moment_id) AS moment_count
      FROM videos v
      LEFT JOIN video_moments m ON m.video_id = v.video_id
      GROUP BY v.video_id
      ORDER BY v.video_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: listing videos: %v", port.ErrStoreUnavailable, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close videos cursor: %v", err)
		}
	}()

	var videos []model.VideoWithCount
	for rows.Next() {
		var v model.VideoWithCount
		if err := rows.Scan(
			&v.VideoID, &v.OriginalFilename, &v.CompressedFilename, &v.DurationSeconds,
			&v.FPS, &v.CompressedFileSizeBytes, &v.ProcessingDateUTC,
			&v.SceneChangeTimestamps, &v.KeyframesAnalyzedCount, &v.AnalysisStatus,
			&v.ErrorMessage, &v.CreatedAt, &v.UpdatedAt,
			&v.MomentCount,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning video: %v", port.ErrStoreUnavailable, err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating videos: %v", port.ErrStoreUnavailable, err)
	}

	return videos, nil
}

func (s *MomentStore) Stats(ctx context.Context) (*model.StoreStats, error) {
	const query = `
      SELECT
        (SELECT COUNT(*) FROM videos),
        (SELECT COUNT(*) FROM video_moments),
        (SELECT COUNT(*) FROM video_moments WHERE average_color_rgb IS NOT NULL),
        (SELECT COUNT(*) FROM video_moments WHERE clip_embedding IS NOT NULL),
        COALESCE((SELECT SUM(duration_seconds) FROM videos), 0),
        COALESCE((SELECT AVG(duration_seconds) FROM videos), 0)`

	var st model.StoreStats
	if err := s.db.QueryRowContext(ctx, query).Scan(
		&st.Videos, &st.Moments, &st.MomentsWithColor, &st.MomentsWithEmbedding,
		&st.TotalDurationSeconds, &st.AverageDurationSeconds,
	); err != nil {
		return nil, fmt.Errorf("%w: fetching stats: %v", port.ErrStoreUnavailable, err)
	}

	return &st, nil
}

func (s *MomentStore) InTransaction(ctx context.Context, fn func(tx port.MomentTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", port.ErrStoreUnavailable, err)
	}

	if err := fn(&momentTx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("rollback failed: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %v", port.ErrStoreUnavailable, err)
	}
	return nil
}

type momentTx struct {
	tx *sql.Tx
}

// compile-time check: *momentTx must satisfy port.MomentTx
var _ port.MomentTx = (*momentTx)(nil)

func (t *momentTx) UpsertVideo(ctx context.Context, video *model.Video) error {
	log.Printf("upserting video #%s, at status %q...", video.VideoID, video.AnalysisStatus)

	const query = `
      INSERT INTO videos (
        video_id, original_filename, compressed_filename, duration_seconds,
        fps, compressed_file_size_bytes, processing_date_utc,
        scene_change_timestamps, keyframes_analyzed_count, analysis_status,
        error_message
      ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
      ON CONFLICT (video_id) DO UPDATE SET
        original_filename          = EXCLUDED.original_filename,
        compressed_filename        = EXCLUDED.compressed_filename,
        duration_seconds           = EXCLUDED.duration_seconds,
        fps                        = EXCLUDED.fps,
        compressed_file_size_bytes = EXCLUDED.compressed_file_size_bytes,
        processing_date_utc        = EXCLUDED.processing_date_utc,
        scene_change_timestamps    = EXCLUDED.scene_change_timestamps,
        keyframes_analyzed_count   = EXCLUDED.keyframes_analyzed_count,
        analysis_status            = EXCLUDED.analysis_status,
        error_message              = EXCLUDED.error_message,
        updated_at                 = CURRENT_TIMESTAMP`

	_, err := t.tx.ExecContext(ctx, query,
		video.VideoID, video.OriginalFilename, video.CompressedFilename,
		video.DurationSeconds, video.FPS, video.CompressedFileSizeBytes,
		video.ProcessingDateUTC, video.SceneChangeTimestamps,
		video.KeyframesAnalyzedCount, video.AnalysisStatus, video.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("%w: upserting video %q: %v", port.ErrStoreUnavailable, video.VideoID, err)
	}

	return nil
}

func (t *momentTx) ReplaceMomentsForVideo(ctx context.Context, videoID string, moments []model.Moment) error {
	log.Printf("replacing moments of video #%s with %d new ones...", videoID, len(moments))

	if _, err := t.tx.ExecContext(ctx, `DELETE FROM video_moments WHERE video_id = $1`, videoID); err != nil {
		return fmt.Errorf("%w: deleting moments of video %q: %v", port.ErrStoreUnavailable, videoID, err)
	}

	const query = `
      INSERT INTO video_moments (
        moment_id, video_id, frame_identifier, timestamp_seconds,
        keyframe_image_path, clip_embedding, detected_object_names,
        extracted_search_words, average_color_rgb, detailed_features,
        extraction_success
      ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	for _, m := range moments {
		if _, err := t.tx.ExecContext(ctx, query,
			m.MomentID, videoID, m.FrameIdentifier, m.TimestampSeconds,
			m.KeyframeImagePath, m.ClipEmbedding, m.DetectedObjectNames,
			m.ExtractedSearchWords, m.AverageColorRGB, m.DetailedFeatures,
			m.ExtractionSuccess,
		); err != nil {
			return fmt.Errorf("%w: inserting moment %q: %v", port.ErrStoreUnavailable, m.MomentID, err)
		}
	}

	return nil
}
