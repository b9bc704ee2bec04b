package domain

import "time"

// SnapshotMeta describes an index snapshot. It is written alongside the
// vectors and validated on load.
type SnapshotMeta struct {
	// Model is the embedding model identifier used to build the snapshot.
	// Queries against the snapshot must use the same model.
	Model string

	// Dimensions is the embedding vector size shared by every vector in
	// the snapshot.
	Dimensions int

	// ChunkCount is the number of indexed chunks.
	ChunkCount int

	// CreatedAt is when the snapshot was built.
	CreatedAt time.Time
}

// Snapshot is an immutable, queryable index produced by one ingestion
// run. Chunks and Vectors are parallel arrays: Vectors[i] embeds
// Chunks[i]. A snapshot is replaced wholesale, never updated in place.
type Snapshot struct {
	Meta   SnapshotMeta
	Chunks []Chunk

	// Vectors holds one embedding per chunk, all of Meta.Dimensions length.
	Vectors [][]float32
}

// ScoredChunk is a retrieval hit: a chunk with its cosine similarity to
// the query vector.
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}

// IndexStatus reports whether an index is available for queries.
type IndexStatus struct {
	IndexPresent bool   `json:"index_present"`
	ChunkCount   int    `json:"chunk_count"`
	Model        string `json:"model,omitempty"`
}
