package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

const TypeIngestReport = "report:ingest"

type IngestReportPayload struct {
	Report port.Report `json:"report"`
}

// NewIngestReportTask creates an Asynq task carrying one analysis report.
func NewIngestReportTask(report port.Report) (*asynq.Task, error) {
	p := IngestReportPayload{Report: report}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal ingest-report payload: %w", err)
	}
	return asynq.NewTask(TypeIngestReport, data), nil
}

// ParseIngestReportPayload parses the task payload to IngestReportPayload.
func ParseIngestReportPayload(t *asynq.Task) (IngestReportPayload, error) {
	var p IngestReportPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return IngestReportPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
