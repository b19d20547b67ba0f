package mock

import (
	"context"

	"github.com/tgoubier/moments-ms-go/internal/port"
)

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	// stored values
	StatsOut []byte

	// etag values
	EtagStats string

	// errors
	StatsErr error

	// call flags
	StatsCalled bool
}

func (m *HTTPRenderer) RenderStats(ctx context.Context, getter port.StatsGetter) ([]byte, string, error) {
	m.StatsCalled = true
	return m.StatsOut, m.EtagStats, m.StatsErr
}
