package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/logger"
)

// watchFilter decides whether a changed file is worth ingesting.
// Injected by main from the loader registry.
var watchFilter func(path string) bool

// SetWatchFilter injects the supported-file predicate used by the
// watch command.
func SetWatchFilter(f func(path string) bool) {
	watchFilter = f
}

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and ingest files as they change",
	Long: `Watches the given directory and re-ingests supported files when they
are created or modified. Changes are batched over a short debounce
window so a burst of writes triggers a single rebuild.

Runs until interrupted with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 2*time.Second, "delay before ingesting a batch of changes")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", dir)
	return watchLoop(ctx, cmd, watcher)
}

// watchLoop batches file events and ingests each batch after the
// debounce window has been quiet.
func watchLoop(ctx context.Context, cmd *cobra.Command, watcher *fsnotify.Watcher) error {
	pending := make(map[string]struct{})
	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !watchable(event.Name) {
				continue
			}
			logger.Debug("watch: queued %s", event.Name)
			pending[event.Name] = struct{}{}
			timer.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("watch error: %v\n", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			pending = make(map[string]struct{})

			ingestBatch(ctx, cmd, paths)
		}
	}
}

// watchable filters out hidden files, editor temp files and types no
// loader handles.
func watchable(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	if watchFilter != nil && !watchFilter(path) {
		return false
	}
	return true
}

func ingestBatch(ctx context.Context, cmd *cobra.Command, paths []string) {
	cmd.Printf("Changes detected, ingesting %d file(s)\n", len(paths))
	report, err := ingestService.Ingest(ctx, paths)
	if err != nil {
		if errors.Is(err, domain.ErrIngestInProgress) {
			cmd.PrintErrln("ingest already running, batch skipped")
			return
		}
		cmd.PrintErrf("ingest failed: %v\n", err)
		return
	}
	cmd.Printf("Indexed %d file(s), %d chunk(s)\n", report.IndexedCount, report.ChunkCount)
	for _, name := range report.FailedFiles {
		cmd.Printf("  failed: %s\n", name)
	}
}
