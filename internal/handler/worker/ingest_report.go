package worker

import (
	"context"
	"log"

	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/task"
)

// IngestReportHandler handles an ingest-report task. It delegates the
// decoded report to the port.ReportIngester service.
func IngestReportHandler(ctx context.Context, p task.IngestReportPayload, svc port.ReportIngester) error {
	out, err := svc.IngestReport(ctx, p.Report)
	if err != nil {
		log.Printf("❌  Failed to ingest report for video #%s: %v", p.Report.VideoID, err)
		return err
	}

	log.Printf("✅  Successfully ingested %d moments for video #%s", out.MomentsIngested, out.VideoID)
	return nil
}
