package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var filesJSON bool

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the ingested documents",
	RunE:  runFiles,
}

func init() {
	filesCmd.Flags().BoolVar(&filesJSON, "json", false, "output the list as JSON")
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	files, err := ingestService.Files(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing files failed: %w", err)
	}

	if filesJSON {
		data, err := json.MarshalIndent(files, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal file list: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(files) == 0 {
		cmd.Println("No documents ingested.")
		return nil
	}

	for _, name := range files {
		cmd.Println(name)
	}
	return nil
}
