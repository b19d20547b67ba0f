package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/tgoubier/moments-ms-go/internal/cache"
	"github.com/tgoubier/moments-ms-go/internal/migration"
	"github.com/tgoubier/moments-ms-go/internal/model"
	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/repository/postgres"
	ingestSvc "github.com/tgoubier/moments-ms-go/internal/usecase/ingest"
	"github.com/tgoubier/moments-ms-go/test/testutil"
)

func TestIngestReportIntegration(t *testing.T) {
	ctx := context.Background()

	testDB, err := testutil.SetupTestDB()
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	defer testDB.Cleanup()
	if err := migration.MigrateUp(testDB.DB); err != nil {
		t.Fatalf("could not run migrations: %v", err)
	}

	store := postgres.NewMomentStore(testDB.DB)
	svc := ingestSvc.NewReportIngester(store, cache.NewNoop())

	report := testutil.GenerateReport("00001", 3)
	out, err := svc.IngestReport(ctx, report)
	if err != nil {
		t.Fatalf("IngestReport returned error: %v", err)
	}
	if out.VideoID != "00001" {
		t.Errorf("VideoID = %q; want %q", out.VideoID, "00001")
	}
	if out.MomentsIngested != 3 {
		t.Errorf("MomentsIngested = %d; want 3", out.MomentsIngested)
	}

	video, err := store.GetVideo(ctx, "00001")
	if err != nil {
		t.Fatalf("GetVideo returned error: %v", err)
	}
	if video.OriginalFilename != "00001.mp4" {
		t.Errorf("OriginalFilename = %q; want %q", video.OriginalFilename, "00001.mp4")
	}
	if video.AnalysisStatus != model.AnalysisStatusCompleted {
		t.Errorf("AnalysisStatus = %q; want %q", video.AnalysisStatus, model.AnalysisStatusCompleted)
	}
	if video.ProcessingDateUTC == nil {
		t.Error("expected a non-nil processing date")
	}

	moments, err := store.FetchMomentsForVideo(ctx, "00001")
	if err != nil {
		t.Fatalf("FetchMomentsForVideo returned error: %v", err)
	}
	if len(moments) != 3 {
		t.Fatalf("got %d moments; want 3", len(moments))
	}
	// rows come back ordered by timestamp
	for i, m := range moments {
		if m.TimestampSeconds != float64(i)*5 {
			t.Errorf("moment %d timestamp = %v; want %v", i, m.TimestampSeconds, float64(i)*5)
		}
		if !m.ClipEmbedding.Valid {
			t.Errorf("moment %d should carry an embedding", i)
		}
		if !m.AverageColorRGB.Valid {
			t.Errorf("moment %d should carry a color", i)
		}
	}

	// re-ingesting the same video replaces its whole moment set
	report = testutil.GenerateReport("00001", 2)
	if _, err := svc.IngestReport(ctx, report); err != nil {
		t.Fatalf("re-ingest returned error: %v", err)
	}
	moments, err = store.FetchMomentsForVideo(ctx, "00001")
	if err != nil {
		t.Fatalf("FetchMomentsForVideo returned error: %v", err)
	}
	if len(moments) != 2 {
		t.Errorf("got %d moments after re-ingest; want 2", len(moments))
	}
}

func TestIngestBatchIntegration_PartialFailure(t *testing.T) {
	ctx := context.Background()

	testDB, err := testutil.SetupTestDB()
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	defer testDB.Cleanup()
	if err := migration.MigrateUp(testDB.DB); err != nil {
		t.Fatalf("could not run migrations: %v", err)
	}

	store := postgres.NewMomentStore(testDB.DB)
	ingester := ingestSvc.NewReportIngester(store, cache.NewNoop())
	svc := ingestSvc.NewBatchIngester(ingester)

	reports := []port.Report{
		testutil.GenerateReport("00001", 2),
		{}, // missing video_id, must be rejected without aborting the batch
		testutil.GenerateReport("00002", 1),
	}

	out, err := svc.IngestBatch(ctx, reports)
	if !errors.Is(err, ingestSvc.ErrPartialIngest) {
		t.Fatalf("expected ErrPartialIngest, got %v", err)
	}
	if out.Succeeded != 2 || out.Failed != 1 {
		t.Errorf("tally = %d/%d; want 2/1", out.Succeeded, out.Failed)
	}
	if out.TotalMoments != 3 {
		t.Errorf("TotalMoments = %d; want 3", out.TotalMoments)
	}

	// the valid reports still landed
	for _, id := range []string{"00001", "00002"} {
		if _, err := store.GetVideo(ctx, id); err != nil {
			t.Errorf("GetVideo(%q) returned error: %v", id, err)
		}
	}
}
