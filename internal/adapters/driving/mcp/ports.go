package mcp

import (
	"github.com/docent-labs/docent-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant answers questions against the indexed corpus.
	Assistant driving.AssistantService

	// Ingest reports index status and corpus contents.
	Ingest driving.IngestService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	// Ingest is optional; the status and files resources degrade gracefully
	return nil
}
