package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/tgoubier/moments-ms-go/internal/port"
)

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderStats fetches the store statistics either from cache or from
// the wrapped use case. It returns the JSON encoded output and a
// quoted ETag string.
func (r *httpRenderer) RenderStats(ctx context.Context, getter port.StatsGetter) ([]byte, string, error) {
	raw, err := r.cache.GetStats(ctx)
	etag, errEtag := r.cache.GetEtagStats(ctx)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetStats(ctx)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	r.cache.SetStats(ctx, raw)
	r.cache.SetEtagStats(ctx, etag)

	return raw, etag, nil
}
