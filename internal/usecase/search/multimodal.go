package search

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/similarity"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

type multimodalSearcherSrv struct {
	store port.MomentStore
}

// compile-time check: *multimodalSearcherSrv must satisfy port.MultimodalSearcher
var _ port.MultimodalSearcher = (*multimodalSearcherSrv)(nil)

// NewMultimodalSearcher constructs the combined text/color/embedding
// query operation.
func NewMultimodalSearcher(store port.MomentStore) port.MultimodalSearcher {
	return &multimodalSearcherSrv{store: store}
}

// SearchMultimodal keeps moments satisfying every supplied criterion
// (AND semantics; a moment missing data for a requested criterion is
// disqualified) and ranks them by a weighted combination of embedding
// similarity and normalised color proximity.
func (s *multimodalSearcherSrv) SearchMultimodal(ctx context.Context, in port.MultimodalSearchInput) (port.SearchOutput, error) {
	if verr := validation.Check(in); verr != nil {
		return port.SearchOutput{}, verr
	}
	if in.Text == "" && len(in.Color) == 0 && len(in.Embedding) == 0 {
		return port.SearchOutput{}, validation.NewError("query", "at least one of text, color or embedding is required")
	}
	limit := clampLimit(in.Limit)

	colorThreshold := DefaultColorThreshold
	if in.Threshold != nil {
		colorThreshold = *in.Threshold
	}
	simThreshold := DefaultSimilarityThreshold
	if in.SimilarityThreshold != nil {
		simThreshold = *in.SimilarityThreshold
	}

	moments, err := s.store.FetchAllMoments(ctx, true)
	if err != nil {
		return port.SearchOutput{}, err
	}

	text := strings.ToLower(in.Text)

	var results []port.SearchResult
	for _, mv := range moments {
		if in.Text != "" {
			if !anyContainsFold(mv.ExtractedSearchWords, text) &&
				!anyContainsFold(mv.DetectedObjectNames, text) {
				continue
			}
		}

		res := port.SearchResult{Moment: mv.Moment, OriginalFilename: mv.OriginalFilename}

		// Components default to the worst score when their modality was
		// not requested; they never gate inclusion in that case.
		simScore := 0.0
		colorDist := ColorScoreScale

		if len(in.Color) > 0 {
			if !mv.AverageColorRGB.Valid {
				continue
			}
			dist := similarity.ColorDistance(colorTriple(in.Color), mv.AverageColorRGB.Channels())
			if dist > colorThreshold {
				continue
			}
			colorDist = dist
			d := dist
			res.ColorDistance = &d
		}

		if len(in.Embedding) > 0 {
			if !mv.ClipEmbedding.Valid {
				continue
			}
			score, err := similarity.CosineSimilarity(in.Embedding, mv.ClipEmbedding.Slice())
			if err != nil {
				return port.SearchOutput{}, err
			}
			if score < simThreshold {
				continue
			}
			simScore = score
			sc := score
			res.SimilarityScore = &sc
		}

		normColor := 1 - math.Min(colorDist/ColorScoreScale, 1)
		total := WeightSimilarity*simScore + WeightColor*normColor
		res.TotalScore = &total

		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].TotalScore > *results[j].TotalScore
	})

	return capResults(results, limit), nil
}
