// Package tui provides an interactive terminal user interface for docent.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/docent-labs/docent-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant answers questions against the indexed corpus.
	Assistant driving.AssistantService

	// Ingest reports index status for the status bar.
	Ingest driving.IngestService
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	if p.Ingest == nil {
		return ErrMissingIngestService
	}
	return nil
}
