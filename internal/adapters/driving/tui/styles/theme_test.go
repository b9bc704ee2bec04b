package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	require.NotNil(t, theme)

	assert.NotEmpty(t, theme.Primary)
	assert.NotEmpty(t, theme.Error)
	assert.NotEmpty(t, theme.Border)
}

func TestNewStyles(t *testing.T) {
	t.Run("nil theme falls back to default", func(t *testing.T) {
		s := NewStyles(nil)
		require.NotNil(t, s)
		assert.NotNil(t, s.Theme())
	})

	t.Run("uses provided theme", func(t *testing.T) {
		theme := DefaultTheme()
		s := NewStyles(theme)
		assert.Same(t, theme, s.Theme())
	})
}
