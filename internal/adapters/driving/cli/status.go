package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

// ProviderStatus reports reachability of one configured AI provider.
type ProviderStatus struct {
	Name  string `json:"name"`
	Model string `json:"model"`
	Err   string `json:"error,omitempty"`
}

// providerCheck pings the configured providers. Injected by main.
var providerCheck func(ctx context.Context) []ProviderStatus

// SetProviderCheck injects the provider reachability check used by
// 'status --check'.
func SetProviderCheck(f func(ctx context.Context) []ProviderStatus) {
	providerCheck = f
}

var (
	statusJSON  bool
	statusCheck bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an index is available",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output status as JSON")
	statusCmd.Flags().BoolVar(&statusCheck, "check", false, "also ping the embedding and LLM providers")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	status, err := ingestService.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("status failed: %w", err)
	}

	var providers []ProviderStatus
	if statusCheck && providerCheck != nil {
		providers = providerCheck(cmd.Context())
	}

	if statusJSON {
		payload := struct {
			*domain.IndexStatus
			Providers []ProviderStatus `json:"providers,omitempty"`
		}{status, providers}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal status: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if status.IndexPresent {
		cmd.Printf("Index ready: %d chunk(s), embedding model %s\n", status.ChunkCount, status.Model)
	} else {
		cmd.Println("No index. Run 'docent ingest' to build one.")
	}

	for _, p := range providers {
		if p.Err == "" {
			cmd.Printf("%s (%s): ok\n", p.Name, p.Model)
		} else {
			cmd.Printf("%s (%s): %s\n", p.Name, p.Model, p.Err)
		}
	}
	return nil
}
