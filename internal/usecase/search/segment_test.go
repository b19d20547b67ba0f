package search

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/tgoubier/moments-ms-go/internal/mock"
	"github.com/tgoubier/moments-ms-go/internal/model"
	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

func TestSearchSegment_MissingVideoID(t *testing.T) {
	svc := NewSegmentSearcher(&mock.MockMomentStore{})

	ts := 30.0
	_, err := svc.SearchSegment(context.Background(), port.SegmentSearchInput{Timestamp: &ts})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["video_id"]; !ok {
		t.Fatalf("expected a video_id field error, got %v", verr.Fields)
	}
}

func TestSearchSegment_MissingTimestamp(t *testing.T) {
	svc := NewSegmentSearcher(&mock.MockMomentStore{})

	_, err := svc.SearchSegment(context.Background(), port.SegmentSearchInput{VideoID: "vid_a"})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSearchSegment_ToleranceWindowAndOrder(t *testing.T) {
	store := &mock.MockMomentStore{VideoMomentsOut: []model.Moment{
		newMV("m1", "vid_a", 24).Moment,
		newMV("m2", "vid_a", 30).Moment,
		newMV("m3", "vid_a", 33).Moment,
		newMV("m4", "vid_a", 36).Moment,
	}}
	svc := NewSegmentSearcher(store)

	ts := 30.0
	out, err := svc.SearchSegment(context.Background(), port.SegmentSearchInput{VideoID: "vid_a", Timestamp: &ts})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"m2", "m3"}
	if got := resultIDs(out); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v closest first, got %v", want, got)
	}
	if *out.Results[0].TimeDiff != 0 || *out.Results[1].TimeDiff != 3 {
		t.Errorf("unexpected time diffs: %f, %f", *out.Results[0].TimeDiff, *out.Results[1].TimeDiff)
	}
	if store.GotVideoID != "vid_a" {
		t.Errorf("expected a single-video fetch, got %q", store.GotVideoID)
	}
}

func TestSearchSegment_HardCap(t *testing.T) {
	var moments []model.Moment
	for i := 0; i < 15; i++ {
		moments = append(moments, newMV(fmt.Sprintf("m%02d", i), "vid_a", 30+float64(i)*0.1).Moment)
	}
	store := &mock.MockMomentStore{VideoMomentsOut: moments}
	svc := NewSegmentSearcher(store)

	ts := 30.0
	out, err := svc.SearchSegment(context.Background(), port.SegmentSearchInput{VideoID: "vid_a", Timestamp: &ts})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out.Results) != SegmentResultCap {
		t.Errorf("expected the hard cap of %d results, got %d", SegmentResultCap, len(out.Results))
	}
	if out.Count != 15 {
		t.Errorf("expected pre-cap count 15, got %d", out.Count)
	}
}

func TestSearchSegment_CustomTolerance(t *testing.T) {
	store := &mock.MockMomentStore{VideoMomentsOut: []model.Moment{
		newMV("m1", "vid_a", 24).Moment,
		newMV("m2", "vid_a", 30).Moment,
	}}
	svc := NewSegmentSearcher(store)

	ts, tol := 30.0, 10.0
	out, err := svc.SearchSegment(context.Background(), port.SegmentSearchInput{VideoID: "vid_a", Timestamp: &ts, Tolerance: &tol})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Count != 2 {
		t.Errorf("expected the wider window to keep both moments, got %d", out.Count)
	}
}

func TestSearchSegment_StoreError(t *testing.T) {
	store := &mock.MockMomentStore{FetchForVideoErr: port.ErrVideoNotFound}
	svc := NewSegmentSearcher(store)

	ts := 30.0
	_, err := svc.SearchSegment(context.Background(), port.SegmentSearchInput{VideoID: "ghost", Timestamp: &ts})
	if !errors.Is(err, port.ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}
