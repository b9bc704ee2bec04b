// Package markdown provides a document loader for Markdown files.
// Thematic breaks (---, ***, ___ on their own line) act as page
// separators; text inside fenced code blocks is kept verbatim and never
// treated as a break.
package markdown

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

// Loader reads Markdown documents.
type Loader struct{}

// New creates a new Markdown loader.
func New() *Loader {
	return &Loader{}
}

// Extensions returns the file extensions this loader accepts.
func (l *Loader) Extensions() []string {
	return []string{".md", ".markdown"}
}

// Load reads the file and splits it into pages on thematic breaks.
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
	for i, pageText := range splitOnBreaks(content) {
		doc.Pages = append(doc.Pages, domain.Page{
			Number: i + 1,
			Text:   pageText,
		})
	}

	return doc, nil
}

// splitOnBreaks splits markdown text on thematic break lines, skipping
// breaks that fall inside fenced code blocks.
func splitOnBreaks(content string) []string {
	lines := strings.Split(content, "\n")

	var pages []string
	var current []string
	inFence := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}

		if !inFence && isThematicBreak(trimmed) {
			pages = append(pages, strings.Join(current, "\n"))
			current = current[:0]
			continue
		}

		current = append(current, line)
	}
	pages = append(pages, strings.Join(current, "\n"))

	return pages
}

// isThematicBreak reports whether a trimmed line is a markdown
// thematic break: at least three of the same marker and nothing else.
func isThematicBreak(line string) bool {
	if len(line) < 3 {
		return false
	}
	marker := rune(line[0])
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	for _, r := range line {
		if r != marker && r != ' ' {
			return false
		}
	}
	return strings.Count(line, string(marker)) >= 3
}
