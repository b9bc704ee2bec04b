// Package cli implements the command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/docent-labs/docent-cli/internal/core/ports/driving"
	"github.com/docent-labs/docent-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	assistantService driving.AssistantService
	ingestService    driving.IngestService
	settingsService  driving.SettingsService
)

var (
	verbose bool

	// dataDir overrides the configured data directory. It is read by
	// main before command dispatch, the flag here documents it and lets
	// cobra accept it.
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "docent",
	Short: "Ask questions about your documents",
	Long: `Docent indexes local documents into a semantic index and answers
natural-language questions about them, citing the files and pages the
answer came from.

Typical session:
  docent ingest manual.txt notes.md
  docent ask "how do I configure the server?"`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory (default ~/.docent/data)")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetAssistantService injects the assistant service.
func SetAssistantService(svc driving.AssistantService) {
	assistantService = svc
}

// SetIngestService injects the ingest service.
func SetIngestService(svc driving.IngestService) {
	ingestService = svc
}

// SetSettingsService injects the settings service.
func SetSettingsService(svc driving.SettingsService) {
	settingsService = svc
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
