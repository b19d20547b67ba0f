package search

import (
	"testing"

	"github.com/lib/pq"
	"github.com/tgoubier/moments-ms-go/internal/model"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

// mvOpt mutates a fixture moment.
type mvOpt func(*model.MomentWithVideo)

func withWords(words ...string) mvOpt {
	return func(mv *model.MomentWithVideo) { mv.ExtractedSearchWords = pq.StringArray(words) }
}

func withObjects(objects ...string) mvOpt {
	return func(mv *model.MomentWithVideo) { mv.DetectedObjectNames = pq.StringArray(objects) }
}

func withColor(r, g, b uint8) mvOpt {
	return func(mv *model.MomentWithVideo) { mv.AverageColorRGB = model.NewRGB(r, g, b) }
}

func withEmbedding(vals ...float32) mvOpt {
	return func(mv *model.MomentWithVideo) { mv.ClipEmbedding = model.NewEmbedding(vals) }
}

func withFilename(name string) mvOpt {
	return func(mv *model.MomentWithVideo) { mv.OriginalFilename = name }
}

func newMV(id, videoID string, ts float64, opts ...mvOpt) model.MomentWithVideo {
	mv := model.MomentWithVideo{
		Moment: model.Moment{
			MomentID:         id,
			VideoID:          videoID,
			FrameIdentifier:  id,
			TimestampSeconds: ts,
		},
		OriginalFilename: videoID + ".mp4",
	}
	for _, opt := range opts {
		opt(&mv)
	}
	return mv
}

func resultIDs(out port.SearchOutput) []string {
	ids := make([]string, len(out.Results))
	for i, r := range out.Results {
		ids[i] = r.MomentID
	}
	return ids
}

func TestClampLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-3, DefaultLimit},
		{1, 1},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
	}
	for _, c := range cases {
		if got := clampLimit(c.in); got != c.want {
			t.Errorf("clampLimit(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMatchTerms(t *testing.T) {
	list := []string{"Sunset", "beach walk"}

	if !matchTerms(list, []string{"sunset"}, false) {
		t.Error("expected OR match on single hit")
	}
	if !matchTerms(list, []string{"missing", "beach"}, false) {
		t.Error("expected OR match when one term hits")
	}
	if matchTerms(list, []string{"missing"}, false) {
		t.Error("expected OR miss")
	}
	if !matchTerms(list, []string{"sunset", "beach"}, true) {
		t.Error("expected AND match when every term hits")
	}
	if matchTerms(list, []string{"sunset", "missing"}, true) {
		t.Error("expected AND miss when one term misses")
	}
}
