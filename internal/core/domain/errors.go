package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidQuestion indicates an empty, whitespace-only or oversized
	// question. User-correctable.
	ErrInvalidQuestion = errors.New("invalid question")

	// ErrNoContent indicates an ingestion run extracted no chunks from
	// any input file.
	ErrNoContent = errors.New("no indexable content")

	// ErrEmptyIndex indicates an index build was attempted with zero
	// chunks or vectors.
	ErrEmptyIndex = errors.New("empty index")

	// ErrIndexNotFound indicates a query before any successful ingestion.
	ErrIndexNotFound = errors.New("index not found")

	// ErrIndexCorrupt indicates persisted index state failed a
	// consistency check. Requires re-ingestion; never auto-repaired.
	ErrIndexCorrupt = errors.New("index corrupt")

	// ErrDimensionMismatch indicates a vector whose length differs from
	// the snapshot dimensionality.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrEmbeddingFailed indicates the embedding provider was
	// unavailable or rejected the input.
	ErrEmbeddingFailed = errors.New("embedding failed")

	// ErrLLMFailed indicates the language model call failed.
	ErrLLMFailed = errors.New("language model failed")

	// ErrIngestInProgress indicates a second write operation was started
	// while an ingestion or reset was still running.
	ErrIngestInProgress = errors.New("ingestion in progress")

	// ErrUnsupportedType indicates no loader accepts the file extension.
	ErrUnsupportedType = errors.New("unsupported file type")
)
