package search

import (
	"context"
	"sort"

	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

type temporalSearcherSrv struct {
	store port.MomentStore
}

// compile-time check: *temporalSearcherSrv must satisfy port.TemporalSearcher
var _ port.TemporalSearcher = (*temporalSearcherSrv)(nil)

// NewTemporalSearcher constructs the time-range query operation.
func NewTemporalSearcher(store port.MomentStore) port.TemporalSearcher {
	return &temporalSearcherSrv{store: store}
}

// SearchTemporal keeps moments whose timestamp lies in [start, end],
// optionally restricted to one video, ordered by timestamp.
func (s *temporalSearcherSrv) SearchTemporal(ctx context.Context, in port.TemporalSearchInput) (port.SearchOutput, error) {
	if verr := validation.Check(in); verr != nil {
		return port.SearchOutput{}, verr
	}
	if *in.EndTime < in.StartTime {
		return port.SearchOutput{}, validation.NewError("end_time", "must not precede start_time")
	}
	limit := clampLimit(in.Limit)

	moments, err := s.store.FetchAllMoments(ctx, true)
	if err != nil {
		return port.SearchOutput{}, err
	}

	var results []port.SearchResult
	for _, mv := range moments {
		if mv.TimestampSeconds < in.StartTime || mv.TimestampSeconds > *in.EndTime {
			continue
		}
		if in.VideoID != "" && mv.VideoID != in.VideoID {
			continue
		}
		results = append(results, port.SearchResult{Moment: mv.Moment, OriginalFilename: mv.OriginalFilename})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TimestampSeconds < results[j].TimestampSeconds
	})

	return capResults(results, limit), nil
}
