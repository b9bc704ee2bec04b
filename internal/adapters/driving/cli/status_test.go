package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

func TestStatusCmd(t *testing.T) {
	t.Run("no index", func(t *testing.T) {
		ingest := &mockIngestService{status: &domain.IndexStatus{}}
		withServices(t, &mockAssistantService{}, ingest)

		out, err := execute(t, "status")

		require.NoError(t, err)
		assert.Contains(t, out, "No index")
	})

	t.Run("index present", func(t *testing.T) {
		ingest := &mockIngestService{
			status: &domain.IndexStatus{
				IndexPresent: true,
				ChunkCount:   42,
				Model:        "nomic-embed-text",
			},
		}
		withServices(t, &mockAssistantService{}, ingest)

		out, err := execute(t, "status")

		require.NoError(t, err)
		assert.Contains(t, out, "Index ready: 42 chunk(s)")
		assert.Contains(t, out, "nomic-embed-text")
	})

	t.Run("json output", func(t *testing.T) {
		ingest := &mockIngestService{
			status: &domain.IndexStatus{IndexPresent: true, ChunkCount: 1, Model: "m"},
		}
		withServices(t, &mockAssistantService{}, ingest)

		out, err := execute(t, "status", "--json")

		require.NoError(t, err)
		assert.Contains(t, out, `"index_present": true`)

		statusJSON = false
	})
}

func TestFilesCmd(t *testing.T) {
	t.Run("empty corpus", func(t *testing.T) {
		withServices(t, &mockAssistantService{}, &mockIngestService{})

		out, err := execute(t, "files")

		require.NoError(t, err)
		assert.Contains(t, out, "No documents ingested.")
	})

	t.Run("lists names", func(t *testing.T) {
		ingest := &mockIngestService{files: []string{"guide.md", "manual.txt"}}
		withServices(t, &mockAssistantService{}, ingest)

		out, err := execute(t, "files")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Equal(t, []string{"guide.md", "manual.txt"}, lines)
	})
}

func TestResetCmd(t *testing.T) {
	t.Run("force skips confirmation", func(t *testing.T) {
		ingest := &mockIngestService{reset: &domain.ResetReport{FilesDeleted: 3}}
		withServices(t, &mockAssistantService{}, ingest)

		out, err := execute(t, "reset", "--force")

		require.NoError(t, err)
		assert.Equal(t, 1, ingest.resets)
		assert.Contains(t, out, "3 file(s) deleted")

		resetForce = false
	})

	t.Run("declined confirmation aborts", func(t *testing.T) {
		ingest := &mockIngestService{reset: &domain.ResetReport{}}
		withServices(t, &mockAssistantService{}, ingest)

		rootCmd.SetIn(strings.NewReader("n\n"))
		t.Cleanup(func() { rootCmd.SetIn(nil) })

		out, err := execute(t, "reset")

		require.NoError(t, err)
		assert.Equal(t, 0, ingest.resets)
		assert.Contains(t, out, "Aborted.")
	})

	t.Run("accepted confirmation resets", func(t *testing.T) {
		ingest := &mockIngestService{reset: &domain.ResetReport{FilesDeleted: 1}}
		withServices(t, &mockAssistantService{}, ingest)

		rootCmd.SetIn(strings.NewReader("y\n"))
		t.Cleanup(func() { rootCmd.SetIn(nil) })

		out, err := execute(t, "reset")

		require.NoError(t, err)
		assert.Equal(t, 1, ingest.resets)
		assert.Contains(t, out, "1 file(s) deleted")
	})
}
