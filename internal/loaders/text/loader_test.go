package text

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Extensions(t *testing.T) {
	assert.Contains(t, New().Extensions(), ".txt")
	assert.Contains(t, New().Extensions(), ".log")
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("single page", func(t *testing.T) {
		path := writeFile(t, "a.txt", "hello world")

		doc, err := New().Load(ctx, path)
		require.NoError(t, err)

		assert.Equal(t, path, doc.Source)
		require.Len(t, doc.Pages, 1)
		assert.Equal(t, 1, doc.Pages[0].Number)
		assert.Equal(t, "hello world", doc.Pages[0].Text)
	})

	t.Run("form feed splits pages", func(t *testing.T) {
		path := writeFile(t, "b.txt", "page one\ftwo\fthree")

		doc, err := New().Load(ctx, path)
		require.NoError(t, err)

		require.Len(t, doc.Pages, 3)
		assert.Equal(t, "page one", doc.Pages[0].Text)
		assert.Equal(t, "two", doc.Pages[1].Text)
		assert.Equal(t, 3, doc.Pages[2].Number)
	})

	t.Run("empty file fails", func(t *testing.T) {
		path := writeFile(t, "c.txt", "  \n\t ")

		_, err := New().Load(ctx, path)
		assert.Error(t, err)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := New().Load(ctx, filepath.Join(t.TempDir(), "missing.txt"))
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		path := writeFile(t, "d.txt", "content")
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := New().Load(cancelled, path)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
