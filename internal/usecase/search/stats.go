package search

import (
	"context"

	"github.com/tgoubier/moments-ms-go/internal/model"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

type statsGetterSrv struct {
	store port.MomentStore
}

// compile-time check: *statsGetterSrv must satisfy port.StatsGetter
var _ port.StatsGetter = (*statsGetterSrv)(nil)

// NewStatsGetter constructs the stats operation.
func NewStatsGetter(store port.MomentStore) port.StatsGetter {
	return &statsGetterSrv{store: store}
}

func (s *statsGetterSrv) GetStats(ctx context.Context) (*model.StoreStats, error) {
	return s.store.Stats(ctx)
}
