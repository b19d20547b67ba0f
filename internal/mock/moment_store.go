package mock

import (
	"context"

	"github.com/tgoubier/moments-ms-go/internal/model"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

// MockMomentStore implements port.MomentStore for tests.
type MockMomentStore struct {
	// stored values
	MomentsOut      []model.MomentWithVideo
	VideoMomentsOut []model.Moment
	VideoOut        *model.Video
	MomentOut       *model.Moment
	ListOut         []model.VideoWithCount
	StatsOut        *model.StoreStats
	Tx              *MockMomentTx

	// captured inputs
	GotWithVideo bool
	GotVideoID   string
	GotMomentID  string

	// errors
	FetchAllErr      error
	FetchForVideoErr error
	GetVideoErr      error
	GetMomentErr     error
	ListErr          error
	StatsErr         error
	BeginErr         error

	// call flags
	FetchAllCalled      bool
	FetchForVideoCalled bool
	GetVideoCalled      bool
	GetMomentCalled     bool
	ListCalled          bool
	StatsCalled         bool
	TxCalled            bool
	RolledBack          bool
	Committed           bool
}

func (m *MockMomentStore) FetchAllMoments(ctx context.Context, withVideo bool) ([]model.MomentWithVideo, error) {
	m.FetchAllCalled = true
	m.GotWithVideo = withVideo
	if m.FetchAllErr != nil {
		return nil, m.FetchAllErr
	}
	return m.MomentsOut, nil
}

func (m *MockMomentStore) FetchMomentsForVideo(ctx context.Context, videoID string) ([]model.Moment, error) {
	m.FetchForVideoCalled = true
	m.GotVideoID = videoID
	if m.FetchForVideoErr != nil {
		return nil, m.FetchForVideoErr
	}
	return m.VideoMomentsOut, nil
}

func (m *MockMomentStore) GetVideo(ctx context.Context, videoID string) (*model.Video, error) {
	m.GetVideoCalled = true
	m.GotVideoID = videoID
	if m.GetVideoErr != nil {
		return nil, m.GetVideoErr
	}
	return m.VideoOut, nil
}

func (m *MockMomentStore) GetMoment(ctx context.Context, momentID string) (*model.Moment, error) {
	m.GetMomentCalled = true
	m.GotMomentID = momentID
	if m.GetMomentErr != nil {
		return nil, m.GetMomentErr
	}
	return m.MomentOut, nil
}

func (m *MockMomentStore) ListVideos(ctx context.Context) ([]model.VideoWithCount, error) {
	m.ListCalled = true
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MockMomentStore) Stats(ctx context.Context) (*model.StoreStats, error) {
	m.StatsCalled = true
	if m.StatsErr != nil {
		return nil, m.StatsErr
	}
	return m.StatsOut, nil
}

func (m *MockMomentStore) InTransaction(ctx context.Context, fn func(tx port.MomentTx) error) error {
	m.TxCalled = true
	if m.BeginErr != nil {
		return m.BeginErr
	}
	tx := m.Tx
	if tx == nil {
		tx = &MockMomentTx{}
		m.Tx = tx
	}
	if err := fn(tx); err != nil {
		m.RolledBack = true
		return err
	}
	m.Committed = true
	return nil
}

// MockMomentTx implements port.MomentTx for tests.
type MockMomentTx struct {
	UpsertErr  error
	ReplaceErr error

	UpsertedVideo   *model.Video
	ReplacedVideoID string
	ReplacedMoments []model.Moment

	UpsertCalled  bool
	ReplaceCalled bool
}

func (t *MockMomentTx) UpsertVideo(ctx context.Context, video *model.Video) error {
	t.UpsertCalled = true
	t.UpsertedVideo = video
	return t.UpsertErr
}

func (t *MockMomentTx) ReplaceMomentsForVideo(ctx context.Context, videoID string, moments []model.Moment) error {
	t.ReplaceCalled = true
	t.ReplacedVideoID = videoID
	t.ReplacedMoments = moments
	return t.ReplaceErr
}
