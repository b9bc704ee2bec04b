package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/core/ports/driving"
)

// mockAssistantService is a mock implementation of driving.AssistantService.
type mockAssistantService struct {
	answer       *domain.Answer
	err          error
	lastQuestion string
	lastOpts     driving.AskOptions
}

func (m *mockAssistantService) Ask(
	_ context.Context,
	question string,
	opts driving.AskOptions,
) (*domain.Answer, error) {
	m.lastQuestion = question
	m.lastOpts = opts
	return m.answer, m.err
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	report    *domain.IngestReport
	reset     *domain.ResetReport
	status    *domain.IndexStatus
	files     []string
	err       error
	lastPaths []string
	resets    int
}

func (m *mockIngestService) Ingest(_ context.Context, paths []string) (*domain.IngestReport, error) {
	m.lastPaths = paths
	return m.report, m.err
}

func (m *mockIngestService) Reset(_ context.Context) (*domain.ResetReport, error) {
	m.resets++
	return m.reset, m.err
}

func (m *mockIngestService) Status(_ context.Context) (*domain.IndexStatus, error) {
	return m.status, m.err
}

func (m *mockIngestService) Files(_ context.Context) ([]string, error) {
	return m.files, m.err
}

// execute runs the root command with the given args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// withServices installs mock services for the duration of a test.
func withServices(t *testing.T, assistant driving.AssistantService, ingest driving.IngestService) {
	t.Helper()

	prevAssistant := assistantService
	prevIngest := ingestService
	assistantService = assistant
	ingestService = ingest
	t.Cleanup(func() {
		assistantService = prevAssistant
		ingestService = prevIngest
	})
}
