package renderer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"testing"

	"github.com/tgoubier/moments-ms-go/internal/mock"
	"github.com/tgoubier/moments-ms-go/internal/model"
)

func TestRenderStats_Cases(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		c := &mock.Cache{StatsOut: []byte(`{"ok":true}`), EtagStats: "\"1234\""}
		r := NewHTTPRenderer(c)
		getter := &mock.MockStatsGetter{}

		out, etag, err := r.RenderStats(ctx, getter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != string(c.StatsOut) {
			t.Errorf("raw mismatch: got %s want %s", out, c.StatsOut)
		}
		if etag != c.EtagStats {
			t.Errorf("etag mismatch: got %s want %s", etag, c.EtagStats)
		}
		if getter.Called {
			t.Error("getter should not be called on cache hit")
		}
		if c.SetStatsCalled || c.SetEtagStatsCalled {
			t.Error("cache should not be set on hit")
		}
	})

	t.Run("cache miss", func(t *testing.T) {
		c := &mock.Cache{}
		resp := &model.StoreStats{Videos: 2, Moments: 10, TotalDurationSeconds: 240}
		getter := &mock.MockStatsGetter{Out: resp}
		r := NewHTTPRenderer(c)

		out, etag, err := r.RenderStats(ctx, getter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected, _ := json.Marshal(resp)
		if string(out) != string(expected) {
			t.Errorf("raw mismatch: got %s want %s", out, expected)
		}
		expEtag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(expected))
		if etag != expEtag {
			t.Errorf("etag mismatch: got %s want %s", etag, expEtag)
		}
		if !getter.Called {
			t.Error("getter should be called on cache miss")
		}
		if !c.SetStatsCalled || !c.SetEtagStatsCalled {
			t.Error("cache should be written on miss")
		}
		if c.EtagStats != expEtag {
			t.Errorf("cached etag mismatch: got %s want %s", c.EtagStats, expEtag)
		}
	})

	t.Run("getter error", func(t *testing.T) {
		c := &mock.Cache{}
		g := &mock.MockStatsGetter{Err: errors.New("fail")}
		r := NewHTTPRenderer(c)

		_, _, err := r.RenderStats(ctx, g)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !g.Called {
			t.Error("getter should be called when cache miss")
		}
		if c.SetStatsCalled || c.SetEtagStatsCalled {
			t.Error("cache should not be written on error")
		}
	})

	t.Run("cache error", func(t *testing.T) {
		c := &mock.Cache{GetStatsErr: errors.New("boom")}
		g := &mock.MockStatsGetter{Out: &model.StoreStats{Videos: 1}}
		r := NewHTTPRenderer(c)

		_, _, err := r.RenderStats(ctx, g)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.Called {
			t.Error("getter should be called when cache returns error")
		}
		if !c.SetStatsCalled || !c.SetEtagStatsCalled {
			t.Error("cache should be written when missing due to error")
		}
	})
}
