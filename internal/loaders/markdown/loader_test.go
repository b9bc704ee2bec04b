package markdown

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("no breaks is one page", func(t *testing.T) {
		doc, err := New().Load(ctx, writeFile(t, "# Title\n\nsome text"))
		require.NoError(t, err)
		require.Len(t, doc.Pages, 1)
		assert.Contains(t, doc.Pages[0].Text, "# Title")
	})

	t.Run("thematic breaks split pages", func(t *testing.T) {
		doc, err := New().Load(ctx, writeFile(t, "first\n\n---\n\nsecond\n\n***\n\nthird"))
		require.NoError(t, err)
		require.Len(t, doc.Pages, 3)
		assert.Contains(t, doc.Pages[0].Text, "first")
		assert.Contains(t, doc.Pages[1].Text, "second")
		assert.Contains(t, doc.Pages[2].Text, "third")
	})

	t.Run("breaks inside code fences are kept", func(t *testing.T) {
		content := "intro\n\n```\n---\n```\n\noutro"
		doc, err := New().Load(ctx, writeFile(t, content))
		require.NoError(t, err)
		require.Len(t, doc.Pages, 1)
		assert.Contains(t, doc.Pages[0].Text, "---")
	})

	t.Run("empty file fails", func(t *testing.T) {
		_, err := New().Load(ctx, writeFile(t, "\n \n"))
		assert.Error(t, err)
	})
}

func TestIsThematicBreak(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"---", true},
		{"----", true},
		{"***", true},
		{"___", true},
		{"- - -", true},
		{"--", false},
		{"-*-", false},
		{"--- text", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, isThematicBreak(tt.line))
		})
	}
}
