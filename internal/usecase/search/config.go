package search

const (
	// DefaultLimit caps a query when the caller supplies none.
	DefaultLimit = 50
	// MaxLimit is the server-enforced ceiling on any requested limit.
	MaxLimit = 200

	// DefaultColorThreshold is the maximum Euclidean RGB distance a
	// moment may have from the queried color.
	DefaultColorThreshold = 50.0
	// DefaultSimilarityThreshold is the minimum cosine similarity a
	// moment's embedding must reach.
	DefaultSimilarityThreshold = 0.7
	// DefaultSegmentTolerance is the time window (seconds) around a
	// segment query's timestamp.
	DefaultSegmentTolerance = 5.0
	// SegmentResultCap bounds segment queries regardless of limit.
	SegmentResultCap = 10

	// Multimodal ranking weights; fixed policy, not user-configurable.
	WeightSimilarity = 0.6
	WeightColor      = 0.4
	// ColorScoreScale normalises a color distance into [0, 1].
	ColorScoreScale = 255.0
)
