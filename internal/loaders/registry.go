// Package loaders selects document loaders by file extension. A loader
// turns one on-disk file into page-structured text; the registry is the
// seam where additional formats (PDF, DOCX) plug in.
package loaders

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/core/ports/driven"
)

// Registry maps file extensions to document loaders.
type Registry struct {
	loaders map[string]driven.DocumentLoader
}

// NewRegistry creates an empty loader registry.
func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]driven.DocumentLoader),
	}
}

// Register adds a loader for every extension it reports. Later
// registrations win on extension conflicts.
func (r *Registry) Register(loader driven.DocumentLoader) {
	for _, ext := range loader.Extensions() {
		r.loaders[strings.ToLower(ext)] = loader
	}
}

// ForPath returns the loader for the file's extension, or
// domain.ErrUnsupportedType when no loader accepts it.
func (r *Registry) ForPath(path string) (driven.DocumentLoader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	loader, ok := r.loaders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, ext)
	}
	return loader, nil
}

// Supports returns true if the file's extension has a registered loader.
func (r *Registry) Supports(path string) bool {
	_, ok := r.loaders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extensions returns all registered extensions, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.loaders))
	for ext := range r.loaders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
