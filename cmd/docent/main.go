// Command docent is a question-answering CLI for local documents.
// It wires the driven adapters (config, AI providers, snapshot storage)
// to the core services and hands them to the CLI layer.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docent-labs/docent-cli/internal/adapters/driven/ai"
	"github.com/docent-labs/docent-cli/internal/adapters/driven/config/file"
	"github.com/docent-labs/docent-cli/internal/adapters/driven/storage/sqlite"
	"github.com/docent-labs/docent-cli/internal/adapters/driving/cli"
	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/core/services"
	"github.com/docent-labs/docent-cli/internal/index"
	"github.com/docent-labs/docent-cli/internal/loaders"
	"github.com/docent-labs/docent-cli/internal/loaders/markdown"
	"github.com/docent-labs/docent-cli/internal/loaders/text"
	"github.com/docent-labs/docent-cli/internal/logger"
	"github.com/docent-labs/docent-cli/internal/segment"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	// The --data-dir flag must win over configuration, and the services
	// are wired before cobra parses flags, so scan the arguments here.
	if override := dataDirFromArgs(os.Args[1:]); override != "" {
		settings.DataDir = override
	}
	dataDir, err := resolveDataDir(settings.DataDir)
	if err != nil {
		return err
	}

	promptStore, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}

	embedder, err := ai.CreateEmbeddingService(settings.Embedding)
	if err != nil {
		return fmt.Errorf("configuring embedding provider: %w", err)
	}
	defer embedder.Close() //nolint:errcheck

	llm, err := ai.CreateLLMService(settings.LLM)
	if err != nil {
		return fmt.Errorf("configuring LLM provider: %w", err)
	}
	defer llm.Close() //nolint:errcheck

	store, err := sqlite.NewStore(dataDir, embedder.ModelName())
	if err != nil {
		return fmt.Errorf("opening snapshot store: %w", err)
	}

	// Load the persisted snapshot so questions work straight away.
	// A missing snapshot is normal; anything else is reported but does
	// not block commands that rebuild the index.
	handle := index.NewHandle()
	if snap, err := store.Load(context.Background()); err == nil {
		handle.Swap(snap)
	} else if !errors.Is(err, domain.ErrIndexNotFound) {
		logger.Warn("Ignoring saved index: %v", err)
	}

	segmenter := segment.New(
		segment.WithChunkSize(settings.Segment.ChunkSize),
		segment.WithOverlap(settings.Segment.Overlap),
	)

	registry := loaders.NewRegistry()
	registry.Register(text.New())
	registry.Register(markdown.New())

	ingestService := services.NewIngestService(
		handle, store, embedder, segmenter, registry,
		filepath.Join(dataDir, "corpus"),
	)
	assistantService := services.NewAssistantService(
		handle, embedder, llm, promptStore, settings.Retrieval,
	)

	cli.SetProviderCheck(func(ctx context.Context) []cli.ProviderStatus {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		statuses := []cli.ProviderStatus{
			{Name: "embedding " + string(settings.Embedding.Provider), Model: embedder.ModelName()},
			{Name: "llm " + string(settings.LLM.Provider), Model: llm.ModelName()},
		}
		if err := embedder.Ping(ctx); err != nil {
			statuses[0].Err = err.Error()
		}
		if err := llm.Ping(ctx); err != nil {
			statuses[1].Err = err.Error()
		}
		return statuses
	})

	cli.SetVersion(version)
	cli.SetSettingsService(settingsService)
	cli.SetIngestService(ingestService)
	cli.SetAssistantService(assistantService)
	cli.SetWatchFilter(registry.Supports)

	return cli.Execute()
}

// dataDirFromArgs extracts a --data-dir override from the raw argument
// list, accepting both "--data-dir dir" and "--data-dir=dir".
func dataDirFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--data-dir" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, "--data-dir=") {
			return strings.TrimPrefix(arg, "--data-dir=")
		}
	}
	return ""
}

// resolveDataDir expands the configured data directory, falling back to
// the per-user default when unset.
func resolveDataDir(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".docent", "data"), nil
}
