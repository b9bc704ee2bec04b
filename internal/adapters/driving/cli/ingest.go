package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

var ingestJSON bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Add documents to the knowledge base",
	Long: `Copies the given files into the corpus and rebuilds the index.

Files that cannot be read or have an unsupported type are reported and
skipped; they never abort the rest of the batch. Previously ingested
files stay searchable.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	report, err := ingestService.Ingest(cmd.Context(), args)
	if err != nil {
		if errors.Is(err, domain.ErrIngestInProgress) {
			return errors.New("another ingest is already running")
		}
		return fmt.Errorf("ingest failed: %w", err)
	}

	if ingestJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Indexed %d file(s), %d chunk(s)\n", report.IndexedCount, report.ChunkCount)
	for _, name := range report.FailedFiles {
		cmd.Printf("  failed: %s\n", name)
	}
	return nil
}
