package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/core/ports/driven"
	"github.com/docent-labs/docent-cli/internal/core/ports/driving"
	"github.com/docent-labs/docent-cli/internal/index"
	"github.com/docent-labs/docent-cli/internal/loaders"
	"github.com/docent-labs/docent-cli/internal/logger"
	"github.com/docent-labs/docent-cli/internal/segment"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService maintains the corpus directory and rebuilds the index
// snapshot from it. Writes are serialised through a mutex; a second
// concurrent ingest fails fast instead of queueing. Readers never take
// the mutex, they see the previous snapshot until the swap.
type IngestService struct {
	mu        sync.Mutex
	handle    *index.Handle
	store     driven.SnapshotStore
	embedder  driven.EmbeddingService
	segmenter *segment.Segmenter
	registry  *loaders.Registry
	corpusDir string
}

// NewIngestService creates a new ingest service. corpusDir is where
// ingested files are copied and kept between runs.
func NewIngestService(
	handle *index.Handle,
	store driven.SnapshotStore,
	embedder driven.EmbeddingService,
	segmenter *segment.Segmenter,
	registry *loaders.Registry,
	corpusDir string,
) *IngestService {
	return &IngestService{
		handle:    handle,
		store:     store,
		embedder:  embedder,
		segmenter: segmenter,
		registry:  registry,
		corpusDir: corpusDir,
	}
}

// Ingest copies the given files into the corpus and rebuilds the index
// from the whole corpus. One bad file never aborts the batch; it is
// reported in the returned report instead.
func (s *IngestService) Ingest(ctx context.Context, paths []string) (*domain.IngestReport, error) {
	if !s.mu.TryLock() {
		return nil, domain.ErrIngestInProgress
	}
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.corpusDir, 0700); err != nil {
		return nil, fmt.Errorf("create corpus directory: %w", err)
	}

	report := &domain.IngestReport{
		FailedFiles: []string{},
	}

	// Copy accepted files into the corpus. Unsupported or unreadable
	// files are recorded as failures and skipped.
	for _, path := range paths {
		name := filepath.Base(path)
		if !s.registry.Supports(path) {
			logger.Warn("Skipping %s: unsupported file type", name)
			report.FailedFiles = append(report.FailedFiles, name)
			continue
		}
		if err := copyFile(path, filepath.Join(s.corpusDir, name)); err != nil {
			logger.Warn("Skipping %s: %v", name, err)
			report.FailedFiles = append(report.FailedFiles, name)
			continue
		}
		logger.Debug("Copied %s into corpus", name)
	}

	// Rebuild from the entire corpus so previously ingested files stay
	// searchable after the swap.
	names, err := s.corpusFiles()
	if err != nil {
		return nil, err
	}

	var chunks []domain.Chunk
	failed := make(map[string]bool, len(report.FailedFiles))
	for _, name := range report.FailedFiles {
		failed[name] = true
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fileChunks, err := s.segmentFile(ctx, filepath.Join(s.corpusDir, name))
		if err != nil {
			logger.Warn("Failed to process %s: %v", name, err)
			if !failed[name] {
				report.FailedFiles = append(report.FailedFiles, name)
				failed[name] = true
			}
			continue
		}
		if len(fileChunks) == 0 {
			logger.Warn("No extractable text in %s", name)
			if !failed[name] {
				report.FailedFiles = append(report.FailedFiles, name)
				failed[name] = true
			}
			continue
		}
		chunks = append(chunks, fileChunks...)
		report.IndexedCount++
	}

	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: no chunks produced from %d file(s)",
			domain.ErrNoContent, len(names))
	}

	logger.Info("Embedding %d chunks with %s", len(chunks), s.embedder.ModelName())
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingFailed, err)
	}

	snap, err := index.Build(s.embedder.ModelName(), chunks, vectors)
	if err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}

	if err := s.store.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}

	// Publish only after the snapshot is durably saved. Readers swap
	// over atomically; in-flight queries finish on the old snapshot.
	s.handle.Swap(snap)

	report.ChunkCount = len(chunks)
	logger.Info("Index rebuilt: %d files, %d chunks", report.IndexedCount, report.ChunkCount)
	return report, nil
}

// Reset invalidates the active snapshot, removes the persisted snapshot
// and deletes all corpus files.
func (s *IngestService) Reset(ctx context.Context) (*domain.ResetReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clear the in-memory snapshot first so queries stop matching
	// content that is about to disappear from disk.
	s.handle.Clear()

	if err := s.store.Delete(ctx); err != nil {
		return nil, fmt.Errorf("delete snapshot: %w", err)
	}

	names, err := s.corpusFiles()
	if err != nil {
		return nil, err
	}

	report := &domain.ResetReport{}
	for _, name := range names {
		if err := os.Remove(filepath.Join(s.corpusDir, name)); err != nil {
			return report, fmt.Errorf("remove corpus file %s: %w", name, err)
		}
		report.FilesDeleted++
	}

	logger.Info("Knowledge base reset: %d file(s) deleted", report.FilesDeleted)
	return report, nil
}

// Status reports whether an index is available for queries.
func (s *IngestService) Status(ctx context.Context) (*domain.IndexStatus, error) {
	snap, err := s.handle.Active()
	if err != nil {
		return &domain.IndexStatus{IndexPresent: false}, nil
	}

	return &domain.IndexStatus{
		IndexPresent: true,
		ChunkCount:   snap.Meta.ChunkCount,
		Model:        snap.Meta.Model,
	}, nil
}

// Files lists the corpus file names, sorted.
func (s *IngestService) Files(ctx context.Context) ([]string, error) {
	return s.corpusFiles()
}

// segmentFile loads one corpus file and splits it into chunks.
func (s *IngestService) segmentFile(ctx context.Context, path string) ([]domain.Chunk, error) {
	loader, err := s.registry.ForPath(path)
	if err != nil {
		return nil, err
	}

	doc, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	return s.segmenter.Segment(doc), nil
}

// corpusFiles returns the sorted names of regular files in the corpus
// directory. A missing directory means an empty corpus.
func (s *IngestService) corpusFiles() ([]string, error) {
	entries, err := os.ReadDir(s.corpusDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read corpus directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// copyFile copies src to dst, replacing dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy contents: %w", err)
	}

	return out.Close()
}
