package ai

import (
	"errors"
	"fmt"
	"math"
)

var ErrZeroVector = errors.New("cosine similarity of a zero vector is undefined")

// CosineSimilarity compares two embeddings from the same model. The result is
// in [-1, 1].
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("vectors must be non-empty")
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d != %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i, av := range a {
		x, y := float64(av), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0, ErrZeroVector
	}
	return dot / math.Sqrt(normA*normB), nil
}
