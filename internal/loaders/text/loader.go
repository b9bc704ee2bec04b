// Package text provides a document loader for plain text files.
// Form feed characters act as page separators, matching how text
// converted from paginated formats marks page breaks.
package text

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads plain text documents.
type Loader struct{}

// New creates a new plain text loader.
func New() *Loader {
	return &Loader{}
}

// Extensions returns the file extensions this loader accepts.
func (l *Loader) Extensions() []string {
	return []string{".txt", ".log", ".text"}
}

// Load reads the file and splits it into pages on form feed characters.
// A file without form feeds is a single page. A file with no
// extractable text fails.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("no extractable text in %s", path)
	}

	doc := &domain.Document{Source: path}
	for i, pageText := range strings.Split(content, "\f") {
		doc.Pages = append(doc.Pages, domain.Page{
			Number: i + 1,
			Text:   pageText,
		})
	}

	return doc, nil
}
