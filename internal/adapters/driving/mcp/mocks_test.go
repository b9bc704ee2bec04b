package mcp

import (
	"context"

	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/core/ports/driving"
)

// mockAssistantService is a mock implementation of driving.AssistantService.
type mockAssistantService struct {
	answer   *domain.Answer
	err      error
	lastOpts driving.AskOptions
}

func (m *mockAssistantService) Ask(
	_ context.Context,
	_ string,
	opts driving.AskOptions,
) (*domain.Answer, error) {
	m.lastOpts = opts
	return m.answer, m.err
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	report *domain.IngestReport
	reset  *domain.ResetReport
	status *domain.IndexStatus
	files  []string
	err    error
}

func (m *mockIngestService) Ingest(_ context.Context, _ []string) (*domain.IngestReport, error) {
	return m.report, m.err
}

func (m *mockIngestService) Reset(_ context.Context) (*domain.ResetReport, error) {
	return m.reset, m.err
}

func (m *mockIngestService) Status(_ context.Context) (*domain.IndexStatus, error) {
	return m.status, m.err
}

func (m *mockIngestService) Files(_ context.Context) ([]string, error) {
	return m.files, m.err
}
