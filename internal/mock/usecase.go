package mock

import (
	"context"

	"github.com/tgoubier/moments-ms-go/internal/model"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

// MockSearcher implements every search port for handler tests. It
// records the last input it saw and replays Out/Err.
type MockSearcher struct {
	Out port.SearchOutput
	Err error

	Called bool

	InKeyword    port.KeywordSearchInput
	InObject     port.ObjectSearchInput
	InText       port.TextSearchInput
	InColor      port.ColorSearchInput
	InEmbedding  port.EmbeddingSearchInput
	InTemporal   port.TemporalSearchInput
	InSegment    port.SegmentSearchInput
	InMultimodal port.MultimodalSearchInput
}

func (m *MockSearcher) SearchKeywords(ctx context.Context, in port.KeywordSearchInput) (port.SearchOutput, error) {
	m.Called = true
	m.InKeyword = in
	return m.Out, m.Err
}

func (m *MockSearcher) SearchObjects(ctx context.Context, in port.ObjectSearchInput) (port.SearchOutput, error) {
	m.Called = true
	m.InObject = in
	return m.Out, m.Err
}

func (m *MockSearcher) SearchText(ctx context.Context, in port.TextSearchInput) (port.SearchOutput, error) {
	m.Called = true
	m.InText = in
	return m.Out, m.Err
}

func (m *MockSearcher) SearchColor(ctx context.Context, in port.ColorSearchInput) (port.SearchOutput, error) {
	m.Called = true
	m.InColor = in
	return m.Out, m.Err
}

func (m *MockSearcher) SearchEmbedding(ctx context.Context, in port.EmbeddingSearchInput) (port.SearchOutput, error) {
	m.Called = true
	m.InEmbedding = in
	return m.Out, m.Err
}

func (m *MockSearcher) SearchTemporal(ctx context.Context, in port.TemporalSearchInput) (port.SearchOutput, error) {
	m.Called = true
	m.InTemporal = in
	return m.Out, m.Err
}

func (m *MockSearcher) SearchSegment(ctx context.Context, in port.SegmentSearchInput) (port.SearchOutput, error) {
	m.Called = true
	m.InSegment = in
	return m.Out, m.Err
}

func (m *MockSearcher) SearchMultimodal(ctx context.Context, in port.MultimodalSearchInput) (port.SearchOutput, error) {
	m.Called = true
	m.InMultimodal = in
	return m.Out, m.Err
}

// MockStatsGetter implements port.StatsGetter for tests.
type MockStatsGetter struct {
	Out    *model.StoreStats
	Err    error
	Called bool
}

func (m *MockStatsGetter) GetStats(ctx context.Context) (*model.StoreStats, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockVideoLister implements port.VideoLister for tests.
type MockVideoLister struct {
	Out    []model.VideoWithCount
	Err    error
	Called bool
}

func (m *MockVideoLister) ListVideos(ctx context.Context) ([]model.VideoWithCount, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockVideoGetter implements port.VideoGetter for tests.
type MockVideoGetter struct {
	Out    port.VideoDetailsOutput
	Err    error
	GotID  string
	Called bool
}

func (m *MockVideoGetter) GetVideoDetails(ctx context.Context, videoID string) (port.VideoDetailsOutput, error) {
	m.Called = true
	m.GotID = videoID
	return m.Out, m.Err
}

// MockKeyframeURLGetter implements port.KeyframeURLGetter for tests.
type MockKeyframeURLGetter struct {
	Out    port.KeyframeURLOutput
	Err    error
	GotID  string
	Called bool
}

func (m *MockKeyframeURLGetter) GetKeyframeURL(ctx context.Context, momentID string) (port.KeyframeURLOutput, error) {
	m.Called = true
	m.GotID = momentID
	return m.Out, m.Err
}

// MockReportIngester implements port.ReportIngester for tests.
type MockReportIngester struct {
	Out    port.IngestOutput
	Err    error
	Got    port.Report
	Called bool
}

func (m *MockReportIngester) IngestReport(ctx context.Context, report port.Report) (port.IngestOutput, error) {
	m.Called = true
	m.Got = report
	return m.Out, m.Err
}

// MockBatchIngester implements port.BatchIngester for tests.
type MockBatchIngester struct {
	Out    port.BatchOutput
	Err    error
	Got    []port.Report
	Called bool
}

func (m *MockBatchIngester) IngestBatch(ctx context.Context, reports []port.Report) (port.BatchOutput, error) {
	m.Called = true
	m.Got = reports
	return m.Out, m.Err
}
