package mock

import "context"

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	StatsOut []byte
	VideoOut []byte

	// etag values
	EtagStats string

	// captured inputs
	InvalidatedID string

	// errors
	GetStatsErr      error
	GetEtagStatsErr  error
	GetVideoErr      error
	InvalidateVidErr error

	// call flags
	GetStatsCalled     bool
	GetEtagStatsCalled bool
	SetStatsCalled     bool
	SetEtagStatsCalled bool
	GetVideoCalled     bool
	SetVideoCalled     bool
	InvalidateCalled   bool
}

func (c *Cache) GetStats(ctx context.Context) ([]byte, error) {
	c.GetStatsCalled = true
	if c.GetStatsErr != nil {
		return nil, c.GetStatsErr
	}
	return c.StatsOut, nil
}

func (c *Cache) GetEtagStats(ctx context.Context) (string, error) {
	c.GetEtagStatsCalled = true
	if c.GetEtagStatsErr != nil {
		return "", c.GetEtagStatsErr
	}
	return c.EtagStats, nil
}

func (c *Cache) SetStats(ctx context.Context, data []byte) {
	c.SetStatsCalled = true
	c.StatsOut = data
}

func (c *Cache) SetEtagStats(ctx context.Context, etag string) {
	c.SetEtagStatsCalled = true
	c.EtagStats = etag
}

func (c *Cache) GetVideoDetails(ctx context.Context, videoID string) ([]byte, error) {
	c.GetVideoCalled = true
	if c.GetVideoErr != nil {
		return nil, c.GetVideoErr
	}
	return c.VideoOut, nil
}

func (c *Cache) SetVideoDetails(ctx context.Context, videoID string, data []byte) {
	c.SetVideoCalled = true
	c.VideoOut = data
}

func (c *Cache) InvalidateVideo(ctx context.Context, videoID string) error {
	c.InvalidateCalled = true
	c.InvalidatedID = videoID
	return c.InvalidateVidErr
}
