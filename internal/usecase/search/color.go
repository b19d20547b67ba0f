package search

import (
	"context"
	"sort"

	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/similarity"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

type colorSearcherSrv struct {
	store port.MomentStore
}

// compile-time check: *colorSearcherSrv must satisfy port.ColorSearcher
var _ port.ColorSearcher = (*colorSearcherSrv)(nil)

// NewColorSearcher constructs the color-proximity query operation.
func NewColorSearcher(store port.MomentStore) port.ColorSearcher {
	return &colorSearcherSrv{store: store}
}

// SearchColor keeps moments whose average color lies within the
// threshold of the queried color, closest first. Moments without a
// color are excluded.
func (s *colorSearcherSrv) SearchColor(ctx context.Context, in port.ColorSearchInput) (port.SearchOutput, error) {
	if verr := validation.Check(in); verr != nil {
		return port.SearchOutput{}, verr
	}
	limit := clampLimit(in.Limit)
	threshold := DefaultColorThreshold
	if in.Threshold != nil {
		threshold = *in.Threshold
	}
	query := colorTriple(in.Color)

	moments, err := s.store.FetchAllMoments(ctx, true)
	if err != nil {
		return port.SearchOutput{}, err
	}

	var results []port.SearchResult
	for _, mv := range moments {
		if !mv.AverageColorRGB.Valid {
			continue
		}
		dist := similarity.ColorDistance(query, mv.AverageColorRGB.Channels())
		if dist > threshold {
			continue
		}
		d := dist
		results = append(results, port.SearchResult{
			Moment:           mv.Moment,
			OriginalFilename: mv.OriginalFilename,
			ColorDistance:    &d,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].ColorDistance < *results[j].ColorDistance
	})

	return capResults(results, limit), nil
}
