package search

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tgoubier/moments-ms-go/internal/mock"
	"github.com/tgoubier/moments-ms-go/internal/model"
	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

func TestSearchText_MissingQuery(t *testing.T) {
	svc := NewTextSearcher(&mock.MockMomentStore{})

	_, err := svc.SearchText(context.Background(), port.TextSearchInput{})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["query"]; !ok {
		t.Fatalf("expected a query field error, got %v", verr.Fields)
	}
}

func TestSearchText_MatchesAllThreeSources(t *testing.T) {
	store := &mock.MockMomentStore{MomentsOut: []model.MomentWithVideo{
		newMV("m1", "vid_a", 10, withWords("beach walk")),
		newMV("m2", "vid_b", 20, withObjects("beach ball")),
		newMV("m3", "vid_c", 30, withFilename("Beach_Holiday.mp4")),
		newMV("m4", "vid_d", 40, withWords("city")),
	}}
	svc := NewTextSearcher(store)

	out, err := svc.SearchText(context.Background(), port.TextSearchInput{Query: "beach"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"m1", "m2", "m3"}
	if got := resultIDs(out); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSearchText_StoreError(t *testing.T) {
	store := &mock.MockMomentStore{FetchAllErr: port.ErrStoreUnavailable}
	svc := NewTextSearcher(store)

	_, err := svc.SearchText(context.Background(), port.TextSearchInput{Query: "beach"})
	if !errors.Is(err, port.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
