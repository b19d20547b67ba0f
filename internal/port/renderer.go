package port

import "context"

// HTTPRenderer mediates between HTTP handlers and the stats getter.
// It provides caching capabilities and returns both the JSON
// representation of the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderStats returns the cached JSON stats and their ETag if
	// available or executes the underlying use case and caches the
	// output otherwise.
	RenderStats(ctx context.Context, getter StatsGetter) ([]byte, string, error)
}
