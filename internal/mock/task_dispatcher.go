package mock

import (
	"context"

	"github.com/tgoubier/moments-ms-go/internal/port"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	IngestCalled  bool
	IngestReports []port.Report
	IngestErr     error
}

func (m *MockDispatcher) EnqueueIngestReport(ctx context.Context, report port.Report) error {
	m.IngestCalled = true
	m.IngestReports = append(m.IngestReports, report)
	return m.IngestErr
}
