package similarity

import (
	"errors"
	"math"
)

var (
	// ErrDimensionMismatch is returned when two vectors cannot be
	// compared because their lengths differ or one is empty.
	ErrDimensionMismatch = errors.New("similarity: vector dimension mismatch")
	// ErrDegenerateVector is returned when a vector has zero magnitude.
	ErrDegenerateVector = errors.New("similarity: zero-magnitude vector")
)

// ColorDistance returns the Euclidean distance between two RGB triples,
// in [0, ~441.7].
func ColorDistance(a, b [3]uint8) float64 {
	dr := float64(a[0]) - float64(b[0])
	dg := float64(a[1]) - float64(b[1])
	db := float64(a[2]) - float64(b[2])
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// CosineSimilarity returns the cosine similarity of two equal-length
// vectors, in [-1, 1]. Mismatched or empty vectors fail with
// ErrDimensionMismatch; zero-magnitude vectors with ErrDegenerateVector.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0, ErrDegenerateVector
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
