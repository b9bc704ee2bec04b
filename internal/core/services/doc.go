// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// IngestService owns the corpus and the single-writer index rebuild;
// AssistantService answers questions against the active snapshot.
package services
