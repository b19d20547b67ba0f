package search

import (
	"context"
	"math"
	"sort"

	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

type segmentSearcherSrv struct {
	store port.MomentStore
}

// compile-time check: *segmentSearcherSrv must satisfy port.SegmentSearcher
var _ port.SegmentSearcher = (*segmentSearcherSrv)(nil)

// NewSegmentSearcher constructs the single-video segment query
// operation.
func NewSegmentSearcher(store port.MomentStore) port.SegmentSearcher {
	return &segmentSearcherSrv{store: store}
}

// SearchSegment returns the moments of one video closest in time to the
// given timestamp, within the tolerance window. Hard-capped at
// SegmentResultCap.
func (s *segmentSearcherSrv) SearchSegment(ctx context.Context, in port.SegmentSearchInput) (port.SearchOutput, error) {
	if verr := validation.Check(in); verr != nil {
		return port.SearchOutput{}, verr
	}
	tolerance := DefaultSegmentTolerance
	if in.Tolerance != nil {
		tolerance = *in.Tolerance
	}

	moments, err := s.store.FetchMomentsForVideo(ctx, in.VideoID)
	if err != nil {
		return port.SearchOutput{}, err
	}

	var results []port.SearchResult
	for _, m := range moments {
		diff := math.Abs(m.TimestampSeconds - *in.Timestamp)
		if diff > tolerance {
			continue
		}
		d := diff
		results = append(results, port.SearchResult{Moment: m, TimeDiff: &d})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].TimeDiff < *results[j].TimeDiff
	})

	return capResults(results, SegmentResultCap), nil
}
