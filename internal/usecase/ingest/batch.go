package ingest

import (
	"context"

	"github.com/tgoubier/moments-ms-go/internal/db"
	"github.com/tgoubier/moments-ms-go/internal/logger"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

type batchIngesterSrv struct {
	ingester port.ReportIngester
}

// compile-time check: *batchIngesterSrv must satisfy port.BatchIngester
var _ port.BatchIngester = (*batchIngesterSrv)(nil)

// NewBatchIngester constructs the multi-report ingestion operation.
func NewBatchIngester(ingester port.ReportIngester) port.BatchIngester {
	return &batchIngesterSrv{ingester: ingester}
}

// IngestBatch processes each report independently: one failing report
// never blocks the others. The tally covers every report; when at
// least one failed the output is returned alongside ErrPartialIngest.
func (s *batchIngesterSrv) IngestBatch(ctx context.Context, reports []port.Report) (port.BatchOutput, error) {
	out := port.BatchOutput{
		BatchID: db.NewUUID(),
		Results: make([]port.ReportResult, 0, len(reports)),
	}

	for _, report := range reports {
		ingested, err := s.ingester.IngestReport(ctx, report)
		if err != nil {
			out.Failed++
			out.Results = append(out.Results, port.ReportResult{
				VideoID: report.VideoID,
				OK:      false,
				Error:   err.Error(),
			})
			logger.Errorf(ctx, "batch %s: report %q failed: %v", out.BatchID, report.VideoID, err)
			continue
		}
		out.Succeeded++
		out.TotalMoments += ingested.MomentsIngested
		out.Results = append(out.Results, port.ReportResult{
			VideoID:         ingested.VideoID,
			OK:              true,
			MomentsIngested: ingested.MomentsIngested,
		})
	}

	logger.Info(ctx, "batch ingested",
		"batch_id", out.BatchID.String(),
		"succeeded", out.Succeeded,
		"failed", out.Failed,
		"moments", out.TotalMoments,
	)

	if out.Failed > 0 {
		return out, ErrPartialIngest
	}
	return out, nil
}
