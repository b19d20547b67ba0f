package search

import (
	"context"
	"sort"

	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

type objectSearcherSrv struct {
	store port.MomentStore
}

// compile-time check: *objectSearcherSrv must satisfy port.ObjectSearcher
var _ port.ObjectSearcher = (*objectSearcherSrv)(nil)

// NewObjectSearcher constructs the detected-object query operation.
func NewObjectSearcher(store port.MomentStore) port.ObjectSearcher {
	return &objectSearcherSrv{store: store}
}

// SearchObjects matches each name against the moments' detected object
// names, ordered by timestamp.
func (s *objectSearcherSrv) SearchObjects(ctx context.Context, in port.ObjectSearchInput) (port.SearchOutput, error) {
	if verr := validation.Check(in); verr != nil {
		return port.SearchOutput{}, verr
	}
	limit := clampLimit(in.Limit)

	moments, err := s.store.FetchAllMoments(ctx, true)
	if err != nil {
		return port.SearchOutput{}, err
	}

	var results []port.SearchResult
	for _, mv := range moments {
		if !matchTerms(mv.DetectedObjectNames, in.Objects, in.MatchAll) {
			continue
		}
		results = append(results, port.SearchResult{Moment: mv.Moment, OriginalFilename: mv.OriginalFilename})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TimestampSeconds < results[j].TimestampSeconds
	})

	return capResults(results, limit), nil
}
