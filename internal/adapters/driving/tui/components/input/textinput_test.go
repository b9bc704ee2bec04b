package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/docent-labs/docent-cli/internal/core/domain"
)

func TestQuestionInput_Value(t *testing.T) {
	q := NewQuestionInput(nil)

	q, _ = q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")})

	assert.Equal(t, "hello", q.Value())
}

func TestQuestionInput_Reset(t *testing.T) {
	q := NewQuestionInput(nil)
	q.SetValue("something")

	q.Reset()

	assert.Empty(t, q.Value())
}

func TestQuestionInput_CharLimit(t *testing.T) {
	q := NewQuestionInput(nil)

	long := make([]rune, domain.MaxQuestionLength+50)
	for i := range long {
		long[i] = 'a'
	}
	q, _ = q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: long})

	assert.LessOrEqual(t, len(q.Value()), domain.MaxQuestionLength)
}

func TestQuestionInput_SetWidth(t *testing.T) {
	q := NewQuestionInput(nil)

	q.SetWidth(120)
	assert.Equal(t, 120, q.Width())

	// Narrow terminals keep a usable minimum
	q.SetWidth(10)
	assert.Equal(t, 10, q.Width())
}
