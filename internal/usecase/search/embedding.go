package search

import (
	"context"
	"sort"

	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/similarity"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

type embeddingSearcherSrv struct {
	store port.MomentStore
}

// compile-time check: *embeddingSearcherSrv must satisfy port.EmbeddingSearcher
var _ port.EmbeddingSearcher = (*embeddingSearcherSrv)(nil)

// NewEmbeddingSearcher constructs the embedding-similarity query
// operation.
func NewEmbeddingSearcher(store port.MomentStore) port.EmbeddingSearcher {
	return &embeddingSearcherSrv{store: store}
}

// SearchEmbedding keeps moments whose embedding reaches the similarity
// threshold against the queried vector, most similar first. Moments
// without an embedding are excluded; a stored embedding with a
// different dimensionality aborts the query.
func (s *embeddingSearcherSrv) SearchEmbedding(ctx context.Context, in port.EmbeddingSearchInput) (port.SearchOutput, error) {
	if verr := validation.Check(in); verr != nil {
		return port.SearchOutput{}, verr
	}
	limit := clampLimit(in.Limit)
	threshold := DefaultSimilarityThreshold
	if in.Threshold != nil {
		threshold = *in.Threshold
	}

	moments, err := s.store.FetchAllMoments(ctx, true)
	if err != nil {
		return port.SearchOutput{}, err
	}

	var results []port.SearchResult
	for _, mv := range moments {
		if !mv.ClipEmbedding.Valid {
			continue
		}
		score, err := similarity.CosineSimilarity(in.Embedding, mv.ClipEmbedding.Slice())
		if err != nil {
			return port.SearchOutput{}, err
		}
		if score < threshold {
			continue
		}
		sc := score
		results = append(results, port.SearchResult{
			Moment:           mv.Moment,
			OriginalFilename: mv.OriginalFilename,
			SimilarityScore:  &sc,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].SimilarityScore > *results[j].SimilarityScore
	})

	return capResults(results, limit), nil
}
