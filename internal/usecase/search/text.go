package search

import (
	"context"
	"sort"
	"strings"

	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

type textSearcherSrv struct {
	store port.MomentStore
}

// compile-time check: *textSearcherSrv must satisfy port.TextSearcher
var _ port.TextSearcher = (*textSearcherSrv)(nil)

// NewTextSearcher constructs the free-text query operation, the
// broadest-recall query kind.
func NewTextSearcher(store port.MomentStore) port.TextSearcher {
	return &textSearcherSrv{store: store}
}

// SearchText matches the query against search words, object names or
// the parent video's filename, ordered by timestamp.
func (s *textSearcherSrv) SearchText(ctx context.Context, in port.TextSearchInput) (port.SearchOutput, error) {
	if verr := validation.Check(in); verr != nil {
		return port.SearchOutput{}, verr
	}
	limit := clampLimit(in.Limit)

	moments, err := s.store.FetchAllMoments(ctx, true)
	if err != nil {
		return port.SearchOutput{}, err
	}

	query := strings.ToLower(in.Query)

	var results []port.SearchResult
	for _, mv := range moments {
		if !anyContainsFold(mv.ExtractedSearchWords, query) &&
			!anyContainsFold(mv.DetectedObjectNames, query) &&
			!strings.Contains(strings.ToLower(mv.OriginalFilename), query) {
			continue
		}
		results = append(results, port.SearchResult{Moment: mv.Moment, OriginalFilename: mv.OriginalFilename})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TimestampSeconds < results[j].TimestampSeconds
	})

	return capResults(results, limit), nil
}
