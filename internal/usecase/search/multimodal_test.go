package search

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/tgoubier/moments-ms-go/internal/mock"
	"github.com/tgoubier/moments-ms-go/internal/model"
	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

func TestSearchMultimodal_NoCriteria(t *testing.T) {
	svc := NewMultimodalSearcher(&mock.MockMomentStore{})

	_, err := svc.SearchMultimodal(context.Background(), port.MultimodalSearchInput{})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["query"]; !ok {
		t.Fatalf("expected a query field error, got %v", verr.Fields)
	}
}

func TestSearchMultimodal_AllCriteriaAND(t *testing.T) {
	store := &mock.MockMomentStore{MomentsOut: []model.MomentWithVideo{
		newMV("full", "vid_a", 10, withWords("beach"), withColor(255, 0, 0), withEmbedding(1, 0)),
		newMV("no_text", "vid_a", 20, withColor(255, 0, 0), withEmbedding(1, 0)),
		newMV("no_color", "vid_a", 30, withWords("beach"), withEmbedding(1, 0)),
		newMV("far_color", "vid_a", 40, withWords("beach"), withColor(0, 255, 0), withEmbedding(1, 0)),
		newMV("low_sim", "vid_a", 50, withWords("beach"), withColor(255, 0, 0), withEmbedding(0, 1)),
	}}
	svc := NewMultimodalSearcher(store)

	out, err := svc.SearchMultimodal(context.Background(), port.MultimodalSearchInput{
		Text:      "beach",
		Color:     []int{255, 0, 0},
		Embedding: []float32{1, 0},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"full"}
	if got := resultIDs(out); !reflect.DeepEqual(got, want) {
		t.Errorf("expected only the moment satisfying every criterion, got %v", got)
	}
}

func TestSearchMultimodal_CombinedScore(t *testing.T) {
	store := &mock.MockMomentStore{MomentsOut: []model.MomentWithVideo{
		newMV("m1", "vid_a", 10, withColor(255, 0, 0), withEmbedding(1, 0)),
	}}
	svc := NewMultimodalSearcher(store)

	out, err := svc.SearchMultimodal(context.Background(), port.MultimodalSearchInput{
		Color:     []int{255, 0, 0},
		Embedding: []float32{1, 0},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Count != 1 {
		t.Fatalf("expected one result, got %d", out.Count)
	}
	// sim 1.0, color distance 0: 0.6*1 + 0.4*1 = 1.0
	if got := *out.Results[0].TotalScore; math.Abs(got-1.0) > 1e-9 {
		t.Errorf("expected total score 1.0, got %f", got)
	}
}

func TestSearchMultimodal_TextOnlyScoresColorAsWorst(t *testing.T) {
	store := &mock.MockMomentStore{MomentsOut: []model.MomentWithVideo{
		newMV("m1", "vid_a", 10, withWords("beach")),
	}}
	svc := NewMultimodalSearcher(store)

	out, err := svc.SearchMultimodal(context.Background(), port.MultimodalSearchInput{Text: "beach"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Count != 1 {
		t.Fatalf("expected one result, got %d", out.Count)
	}
	// no similarity, full color distance: 0.6*0 + 0.4*0 = 0
	if got := *out.Results[0].TotalScore; got != 0 {
		t.Errorf("expected total score 0, got %f", got)
	}
	if out.Results[0].ColorDistance != nil || out.Results[0].SimilarityScore != nil {
		t.Error("expected no per-modality scores when the modality was not requested")
	}
}

func TestSearchMultimodal_OrderByTotalScore(t *testing.T) {
	store := &mock.MockMomentStore{MomentsOut: []model.MomentWithVideo{
		newMV("weaker", "vid_a", 10, withEmbedding(0.8, 0.2)),
		newMV("stronger", "vid_a", 20, withEmbedding(1, 0)),
	}}
	svc := NewMultimodalSearcher(store)

	threshold := 0.5
	out, err := svc.SearchMultimodal(context.Background(), port.MultimodalSearchInput{
		Embedding:           []float32{1, 0},
		SimilarityThreshold: &threshold,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"stronger", "weaker"}
	if got := resultIDs(out); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v best first, got %v", want, got)
	}
}

func TestSearchMultimodal_StoreError(t *testing.T) {
	store := &mock.MockMomentStore{FetchAllErr: port.ErrStoreUnavailable}
	svc := NewMultimodalSearcher(store)

	_, err := svc.SearchMultimodal(context.Background(), port.MultimodalSearchInput{Text: "beach"})
	if !errors.Is(err, port.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
