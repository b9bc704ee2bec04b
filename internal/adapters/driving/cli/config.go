package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

var (
	configModel  string
	configAPIKey string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE:  runConfigShow,
}

var configEmbeddingCmd = &cobra.Command{
	Use:   "embedding [provider]",
	Short: "Set the embedding provider (ollama, openai)",
	Long: `Sets the embedding provider and its model. Changing the embedding
model invalidates the index; re-run 'docent ingest' afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigEmbedding,
}

var configLLMCmd = &cobra.Command{
	Use:   "llm [provider]",
	Short: "Set the LLM provider (ollama, openai)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigLLM,
}

func init() {
	for _, c := range []*cobra.Command{configEmbeddingCmd, configLLMCmd} {
		c.Flags().StringVar(&configModel, "model", "", "model name (empty = provider default)")
		c.Flags().StringVar(&configAPIKey, "api-key", "", "API key for cloud providers")
	}
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEmbeddingCmd)
	configCmd.AddCommand(configLLMCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	cmd.Printf("embedding: %s %s", settings.Embedding.Provider, settings.Embedding.Model)
	if settings.Embedding.Dimensions > 0 {
		cmd.Printf(" (%d dimensions)", settings.Embedding.Dimensions)
	}
	cmd.Println()
	cmd.Printf("llm:       %s %s\n", settings.LLM.Provider, settings.LLM.Model)
	cmd.Printf("segment:   chunk size %d, overlap %d\n",
		settings.Segment.ChunkSize, settings.Segment.Overlap)
	cmd.Printf("retrieval: k=%d, context limit %d, source cap %d\n",
		settings.Retrieval.K, settings.Retrieval.ContextLimit, settings.Retrieval.SourceCap)
	if settings.DataDir != "" {
		cmd.Printf("data dir:  %s\n", settings.DataDir)
	}

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("\nwarning: %v\n", err)
	}
	return nil
}

func runConfigEmbedding(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	provider := domain.AIProvider(args[0])
	if err := settingsService.SetEmbeddingProvider(provider, configModel, configAPIKey); err != nil {
		return fmt.Errorf("setting embedding provider: %w", err)
	}

	cmd.Printf("Embedding provider set to %s\n", provider)
	cmd.Println("Re-run 'docent ingest' to rebuild the index with the new model.")
	return nil
}

func runConfigLLM(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	provider := domain.AIProvider(args[0])
	if err := settingsService.SetLLMProvider(provider, configModel, configAPIKey); err != nil {
		return fmt.Errorf("setting LLM provider: %w", err)
	}

	cmd.Printf("LLM provider set to %s\n", provider)
	return nil
}
