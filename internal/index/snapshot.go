package index

import (
	"fmt"
	"time"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

// Build assembles a new immutable snapshot from parallel chunk and
// vector arrays produced by one ingestion run. It fails with
// domain.ErrEmptyIndex when either array is empty and with
// domain.ErrDimensionMismatch when the vectors do not all share one
// dimensionality.
func Build(model string, chunks []domain.Chunk, vectors [][]float32) (*domain.Snapshot, error) {
	if len(chunks) == 0 || len(vectors) == 0 {
		return nil, domain.ErrEmptyIndex
	}
	if len(chunks) != len(vectors) {
		return nil, fmt.Errorf("%w: %d chunks vs %d vectors",
			domain.ErrDimensionMismatch, len(chunks), len(vectors))
	}

	dims := len(vectors[0])
	if dims == 0 {
		return nil, fmt.Errorf("%w: zero-length vector", domain.ErrDimensionMismatch)
	}
	for i, v := range vectors {
		if len(v) != dims {
			return nil, fmt.Errorf("%w: vector %d has %d dimensions, want %d",
				domain.ErrDimensionMismatch, i, len(v), dims)
		}
	}

	// Copy both arrays so later mutation of the caller's slices cannot
	// leak into the immutable snapshot.
	snapChunks := make([]domain.Chunk, len(chunks))
	copy(snapChunks, chunks)
	snapVectors := make([][]float32, len(vectors))
	for i, v := range vectors {
		vec := make([]float32, len(v))
		copy(vec, v)
		snapVectors[i] = vec
	}

	return &domain.Snapshot{
		Meta: domain.SnapshotMeta{
			Model:      model,
			Dimensions: dims,
			ChunkCount: len(snapChunks),
			CreatedAt:  time.Now().UTC(),
		},
		Chunks:  snapChunks,
		Vectors: snapVectors,
	}, nil
}

// Validate checks the structural consistency of a snapshot, typically
// after loading it from disk. Any violation is reported as
// domain.ErrIndexCorrupt.
func Validate(snap *domain.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: nil snapshot", domain.ErrIndexCorrupt)
	}
	if len(snap.Chunks) == 0 {
		return fmt.Errorf("%w: snapshot has no chunks", domain.ErrIndexCorrupt)
	}
	if len(snap.Chunks) != len(snap.Vectors) {
		return fmt.Errorf("%w: %d chunks vs %d vectors",
			domain.ErrIndexCorrupt, len(snap.Chunks), len(snap.Vectors))
	}
	if snap.Meta.ChunkCount != len(snap.Chunks) {
		return fmt.Errorf("%w: header records %d chunks, found %d",
			domain.ErrIndexCorrupt, snap.Meta.ChunkCount, len(snap.Chunks))
	}
	if snap.Meta.Model == "" {
		return fmt.Errorf("%w: missing embedding model identifier", domain.ErrIndexCorrupt)
	}
	for i, v := range snap.Vectors {
		if len(v) != snap.Meta.Dimensions {
			return fmt.Errorf("%w: vector %d has %d dimensions, header says %d",
				domain.ErrIndexCorrupt, i, len(v), snap.Meta.Dimensions)
		}
	}
	for i, c := range snap.Chunks {
		if c.Content == "" {
			return fmt.Errorf("%w: chunk %d has empty content", domain.ErrIndexCorrupt, i)
		}
	}
	return nil
}
