package index

import (
	"fmt"
	"math"
	"sort"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

// Query scores every stored vector against the query vector by cosine
// similarity and returns the top k chunks in non-increasing score
// order. Ties keep original insertion order (earlier chunk wins). k is
// clamped to the number of stored chunks. A query vector whose length
// differs from the snapshot dimensionality fails with
// domain.ErrDimensionMismatch.
func Query(snap *domain.Snapshot, query []float32, k int) ([]domain.ScoredChunk, error) {
	if snap == nil {
		return nil, domain.ErrIndexNotFound
	}
	if len(query) != snap.Meta.Dimensions {
		return nil, fmt.Errorf("%w: query has %d dimensions, snapshot has %d",
			domain.ErrDimensionMismatch, len(query), snap.Meta.Dimensions)
	}
	if k <= 0 {
		return []domain.ScoredChunk{}, nil
	}
	if k > len(snap.Chunks) {
		k = len(snap.Chunks)
	}

	type hit struct {
		idx   int
		score float64
	}
	hits := make([]hit, len(snap.Vectors))
	for i, v := range snap.Vectors {
		hits[i] = hit{idx: i, score: Cosine(query, v)}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].idx < hits[j].idx
	})

	results := make([]domain.ScoredChunk, k)
	for i := 0; i < k; i++ {
		results[i] = domain.ScoredChunk{
			Chunk: snap.Chunks[hits[i].idx],
			Score: hits[i].score,
		}
	}
	return results, nil
}

// Cosine computes the cosine similarity between two vectors: the dot
// product divided by the product of L2 norms. A zero vector has
// similarity 0 with every vector.
func Cosine(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
