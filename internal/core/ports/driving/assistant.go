package driving

import (
	"context"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

// AskOptions tunes a single question. Zero values fall back to the
// configured defaults.
type AskOptions struct {
	// K is the number of chunks to retrieve.
	K int

	// ContextLimit caps the deduplicated chunks forwarded to the LLM.
	ContextLimit int
}

// AssistantService answers natural-language questions against the
// indexed corpus.
type AssistantService interface {
	// Ask validates the question, retrieves matching chunks from the
	// active snapshot, conditions the LLM on the assembled context and
	// returns the normalised answer with source citations.
	Ask(ctx context.Context, question string, opts AskOptions) (*domain.Answer, error)
}

// IngestService maintains the corpus and the index snapshot.
type IngestService interface {
	// Ingest copies the given files into the corpus and rebuilds the
	// index from the whole corpus. One bad file never aborts the batch.
	Ingest(ctx context.Context, paths []string) (*domain.IngestReport, error)

	// Reset invalidates the active snapshot, removes the persisted
	// snapshot and deletes all corpus files.
	Reset(ctx context.Context) (*domain.ResetReport, error)

	// Status reports whether an index is available for queries.
	Status(ctx context.Context) (*domain.IndexStatus, error)

	// Files lists the corpus file names.
	Files(ctx context.Context) ([]string, error)
}
