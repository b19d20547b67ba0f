package search

import (
	"context"
	"sort"

	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

type keywordSearcherSrv struct {
	store port.MomentStore
}

// compile-time check: *keywordSearcherSrv must satisfy port.KeywordSearcher
var _ port.KeywordSearcher = (*keywordSearcherSrv)(nil)

// NewKeywordSearcher constructs the keyword query operation.
func NewKeywordSearcher(store port.MomentStore) port.KeywordSearcher {
	return &keywordSearcherSrv{store: store}
}

// SearchKeywords matches each term against the moments' extracted
// search words, ordered by timestamp.
func (s *keywordSearcherSrv) SearchKeywords(ctx context.Context, in port.KeywordSearchInput) (port.SearchOutput, error) {
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
		if !matchTerms(mv.ExtractedSearchWords, in.Keywords, in.MatchAll) {
			continue
		}
		results = append(results, port.SearchResult{Moment: mv.Moment, OriginalFilename: mv.OriginalFilename})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TimestampSeconds < results[j].TimestampSeconds
	})

	return capResults(results, limit), nil
}
