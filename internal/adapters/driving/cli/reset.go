package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the index and all ingested documents",
	Long: `Removes the index snapshot and every file from the corpus.
The knowledge base is empty afterwards.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	if !resetForce {
		cmd.Print("This deletes the index and all ingested files. Continue? [y/N] ")
		var response string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
		if response != "y" && response != "Y" {
			cmd.Println("Aborted.")
			return nil
		}
	}

	report, err := ingestService.Reset(cmd.Context())
	if err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	cmd.Printf("Knowledge base reset, %d file(s) deleted\n", report.FilesDeleted)
	return nil
}
