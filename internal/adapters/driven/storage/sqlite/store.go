// Package sqlite persists index snapshots in a single SQLite database
// file. A snapshot is written to a temporary file and renamed over the
// live path, so a crash mid-save leaves the previous snapshot intact.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/core/ports/driven"
	"github.com/docent-labs/docent-cli/internal/index"
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

// SnapshotFileName is the well-known snapshot file name inside the data
// directory.
const SnapshotFileName = "index.db"

// Store persists exactly one snapshot at <dataDir>/index.db.
type Store struct {
	path string

	// expectedModel, when non-empty, is validated against the persisted
	// header on load. A mismatch means the snapshot was built with a
	// different embedding model and must be rebuilt.
	expectedModel string
}

// NewStore creates a snapshot store rooted at dataDir.
// If dataDir is empty, defaults to ~/.docent/data.
func NewStore(dataDir, expectedModel string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docent", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{
		path:          filepath.Join(dataDir, SnapshotFileName),
		expectedModel: expectedModel,
	}, nil
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Save durably writes the snapshot. The previous on-disk snapshot is
// replaced only by the final rename, after the new database is fully
// written and closed.
func (s *Store) Save(ctx context.Context, snap *domain.Snapshot) error {
	if err := index.Validate(snap); err != nil {
		return fmt.Errorf("refusing to persist: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing stale temp file: %w", err)
	}

	if err := s.writeDatabase(ctx, tmp, snap); err != nil {
		os.Remove(tmp) //nolint:errcheck
		return err
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp) //nolint:errcheck
		return fmt.Errorf("swapping snapshot into place: %w", err)
	}
	return nil
}

func (s *Store) writeDatabase(ctx context.Context, path string, snap *domain.Snapshot) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `
		CREATE TABLE snapshot_header (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			model TEXT NOT NULL,
			dimensions INTEGER NOT NULL,
			chunk_count INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE TABLE chunks (
			position INTEGER PRIMARY KEY,
			chunk_id TEXT NOT NULL,
			source TEXT NOT NULL,
			page INTEGER NOT NULL,
			ordinal INTEGER NOT NULL,
			content TEXT NOT NULL,
			embedding BLOB NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshot_header (id, model, dimensions, chunk_count, created_at)
		VALUES (1, ?, ?, ?, ?)
	`, snap.Meta.Model, snap.Meta.Dimensions, snap.Meta.ChunkCount,
		snap.Meta.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (position, chunk_id, source, page, ordinal, content, embedding)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, chunk := range snap.Chunks {
		blob := float32SliceToBytes(snap.Vectors[i])
		if _, err := stmt.ExecContext(ctx, i, chunk.ID, chunk.Source,
			chunk.Page, chunk.Ordinal, chunk.Content, blob); err != nil {
			return fmt.Errorf("writing chunk %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Load reads the persisted snapshot and validates it structurally and
// against the expected embedding model.
func (s *Store) Load(ctx context.Context) (*domain.Snapshot, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrIndexNotFound
		}
		return nil, fmt.Errorf("checking snapshot file: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", domain.ErrIndexCorrupt, err)
	}
	defer db.Close()

	snap, err := s.readSnapshot(ctx, db)
	if err != nil {
		return nil, err
	}

	if err := index.Validate(snap); err != nil {
		return nil, err
	}
	if s.expectedModel != "" && snap.Meta.Model != s.expectedModel {
		return nil, fmt.Errorf("%w: snapshot built with model %q, configured model is %q",
			domain.ErrIndexCorrupt, snap.Meta.Model, s.expectedModel)
	}
	return snap, nil
}

func (s *Store) readSnapshot(ctx context.Context, db *sql.DB) (*domain.Snapshot, error) {
	var meta domain.SnapshotMeta
	var createdAt string

	row := db.QueryRowContext(ctx, `
		SELECT model, dimensions, chunk_count, created_at FROM snapshot_header WHERE id = 1
	`)
	if err := row.Scan(&meta.Model, &meta.Dimensions, &meta.ChunkCount, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: missing snapshot header", domain.ErrIndexCorrupt)
		}
		return nil, fmt.Errorf("%w: reading header: %v", domain.ErrIndexCorrupt, err)
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed creation timestamp %q", domain.ErrIndexCorrupt, createdAt)
	}
	meta.CreatedAt = ts

	rows, err := db.QueryContext(ctx, `
		SELECT chunk_id, source, page, ordinal, content, embedding
		FROM chunks ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: reading chunks: %v", domain.ErrIndexCorrupt, err)
	}
	defer rows.Close()

	var chunks []domain.Chunk
	var vectors [][]float32
	for rows.Next() {
		var chunk domain.Chunk
		var blob []byte
		if err := rows.Scan(&chunk.ID, &chunk.Source, &chunk.Page,
			&chunk.Ordinal, &chunk.Content, &blob); err != nil {
			return nil, fmt.Errorf("%w: scanning chunk: %v", domain.ErrIndexCorrupt, err)
		}
		if len(blob)%4 != 0 || len(blob)/4 != meta.Dimensions {
			return nil, fmt.Errorf("%w: embedding blob for chunk %q has %d bytes, want %d",
				domain.ErrIndexCorrupt, chunk.ID, len(blob), meta.Dimensions*4)
		}
		chunks = append(chunks, chunk)
		vectors = append(vectors, bytesToFloat32Slice(blob))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating chunks: %v", domain.ErrIndexCorrupt, err)
	}

	return &domain.Snapshot{Meta: meta, Chunks: chunks, Vectors: vectors}, nil
}

// Delete removes the persisted snapshot. A missing snapshot is not an
// error.
func (s *Store) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	return nil
}

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
