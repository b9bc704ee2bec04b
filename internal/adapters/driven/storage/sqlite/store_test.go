package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/index"
)

func testSnapshot(t *testing.T) *domain.Snapshot {
	t.Helper()
	snap, err := index.Build("all-minilm", []domain.Chunk{
		{ID: "c-0", Source: "/docs/a.txt", Page: 1, Ordinal: 0, Content: "first chunk"},
		{ID: "c-1", Source: "/docs/a.txt", Page: 2, Ordinal: 1, Content: "second chunk"},
		{ID: "c-2", Source: "/docs/b.md", Page: 1, Ordinal: 0, Content: "third chunk"},
	}, [][]float32{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6},
		{-1, 0, 1},
	})
	require.NoError(t, err)
	return snap
}

func TestStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "all-minilm")
	require.NoError(t, err)
	ctx := context.Background()

	snap := testSnapshot(t)
	require.NoError(t, store.Save(ctx, snap))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, snap.Meta.Model, loaded.Meta.Model)
	assert.Equal(t, snap.Meta.Dimensions, loaded.Meta.Dimensions)
	assert.Equal(t, snap.Meta.ChunkCount, loaded.Meta.ChunkCount)
	assert.Equal(t, snap.Chunks, loaded.Chunks)
	assert.Equal(t, snap.Vectors, loaded.Vectors)
	assert.True(t, snap.Meta.CreatedAt.Equal(loaded.Meta.CreatedAt))
}

func TestStore_LoadMissing(t *testing.T) {
	store, err := NewStore(t.TempDir(), "m")
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrIndexNotFound)
}

func TestStore_LoadModelMismatch(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	writer, err := NewStore(dir, "all-minilm")
	require.NoError(t, err)
	require.NoError(t, writer.Save(ctx, testSnapshot(t)))

	reader, err := NewStore(dir, "nomic-embed-text")
	require.NoError(t, err)

	_, err = reader.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrIndexCorrupt)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "m")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte("not a database"), 0600))

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrIndexCorrupt)
}

func TestStore_SaveReplacesPrevious(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "all-minilm")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSnapshot(t)))

	replacement, err := index.Build("all-minilm", []domain.Chunk{
		{ID: "r-0", Source: "/docs/new.txt", Page: 1, Ordinal: 0, Content: "replacement"},
	}, [][]float32{{1, 2, 3}})
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, replacement))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Chunks, 1)
	assert.Equal(t, "r-0", loaded.Chunks[0].ID)

	// No stray temp file after a successful save.
	_, err = os.Stat(store.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestStore_SaveRejectsInvalidSnapshot(t *testing.T) {
	store, err := NewStore(t.TempDir(), "m")
	require.NoError(t, err)

	snap := testSnapshot(t)
	snap.Meta.ChunkCount = 99

	err = store.Save(context.Background(), snap)
	assert.ErrorIs(t, err, domain.ErrIndexCorrupt)
}

func TestStore_Delete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "all-minilm")
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("delete absent snapshot is no error", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx))
	})

	t.Run("delete removes the snapshot", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, testSnapshot(t)))
		require.NoError(t, store.Delete(ctx))

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, domain.ErrIndexNotFound)
	})
}

func TestFloat32BlobRoundTrip(t *testing.T) {
	in := []float32{0, 1.5, -2.25, 3.14159}
	out := bytesToFloat32Slice(float32SliceToBytes(in))
	assert.Equal(t, in, out)

	assert.Nil(t, float32SliceToBytes(nil))
	assert.Nil(t, bytesToFloat32Slice(nil))
}

func TestStore_DefaultPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "m")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, SnapshotFileName), store.Path())
}
