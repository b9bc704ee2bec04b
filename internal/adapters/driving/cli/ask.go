package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/core/ports/driving"
)

var (
	askK       int
	askContext int
	askJSON    bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the ingested documents",
	Long: `Retrieves the most relevant chunks from the index, conditions the
language model on them and prints the answer with source citations.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askK, "k", "k", 0, "number of chunks to retrieve (0 = configured default)")
	askCmd.Flags().IntVar(&askContext, "context", 0, "max chunks used as prompt context (0 = configured default)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	answer, err := assistantService.Ask(cmd.Context(), args[0], driving.AskOptions{
		K:            askK,
		ContextLimit: askContext,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuestion):
			return fmt.Errorf("invalid question: %w", err)
		case errors.Is(err, domain.ErrIndexNotFound):
			return errors.New("no index found, run 'docent ingest' first")
		default:
			return fmt.Errorf("ask failed: %w", err)
		}
	}

	if askJSON {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(answer.Text)
	if len(answer.Sources) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for _, src := range answer.Sources {
			cmd.Printf("  %s\n", src)
		}
	}
	return nil
}
