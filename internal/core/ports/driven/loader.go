package driven

import (
	"context"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

// DocumentLoader extracts page-structured text from a file on disk.
// Loaders are selected by file extension through the loader registry;
// a loader never mutates the file it reads.
type DocumentLoader interface {
	// Load reads the file at path and returns its pages in order.
	// A file that yields no extractable text is a load failure.
	Load(ctx context.Context, path string) (*domain.Document, error)

	// Extensions returns the lowercase file extensions this loader
	// accepts, including the leading dot.
	Extensions() []string
}
