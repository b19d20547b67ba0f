package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/tgoubier/moments-ms-go/internal/db"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

// flakyIngester fails every report whose video id is listed.
type flakyIngester struct {
	failing map[string]bool
	seen    []string
}

func (f *flakyIngester) IngestReport(ctx context.Context, report port.Report) (port.IngestOutput, error) {
	f.seen = append(f.seen, report.VideoID)
	if f.failing[report.VideoID] {
		return port.IngestOutput{}, port.ErrStoreUnavailable
	}
	return port.IngestOutput{VideoID: report.VideoID, MomentsIngested: 2}, nil
}

func TestIngestBatch_AllSucceed(t *testing.T) {
	svc := NewBatchIngester(&flakyIngester{})

	out, err := svc.IngestBatch(context.Background(), []port.Report{
		{VideoID: "vid_a"}, {VideoID: "vid_b"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Succeeded != 2 || out.Failed != 0 || out.TotalMoments != 4 {
		t.Errorf("unexpected tally: %+v", out)
	}
	if len(out.Results) != 2 {
		t.Fatalf("expected 2 per-report results, got %d", len(out.Results))
	}
	if out.BatchID == (db.UUID{}) {
		t.Error("expected a batch id to be assigned")
	}
}

func TestIngestBatch_PartialFailure(t *testing.T) {
	ingester := &flakyIngester{failing: map[string]bool{"vid_b": true}}
	svc := NewBatchIngester(ingester)

	out, err := svc.IngestBatch(context.Background(), []port.Report{
		{VideoID: "vid_a"}, {VideoID: "vid_b"}, {VideoID: "vid_c"},
	})
	if !errors.Is(err, ErrPartialIngest) {
		t.Fatalf("expected ErrPartialIngest, got %v", err)
	}
	if out.Succeeded != 2 || out.Failed != 1 || out.TotalMoments != 4 {
		t.Errorf("unexpected tally: %+v", out)
	}
	if len(ingester.seen) != 3 {
		t.Errorf("expected every report to be attempted, got %v", ingester.seen)
	}
	if out.Results[1].OK || out.Results[1].Error == "" {
		t.Errorf("expected a recorded failure for vid_b, got %+v", out.Results[1])
	}
}

func TestIngestBatch_Empty(t *testing.T) {
	svc := NewBatchIngester(&flakyIngester{})

	out, err := svc.IngestBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Succeeded != 0 || out.Failed != 0 || len(out.Results) != 0 {
		t.Errorf("unexpected tally: %+v", out)
	}
}
