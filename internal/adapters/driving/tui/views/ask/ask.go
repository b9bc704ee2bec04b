// Package ask provides the question-and-answer view for the TUI.
package ask

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docent-labs/docent-cli/internal/adapters/driving/tui/components/input"
	"github.com/docent-labs/docent-cli/internal/adapters/driving/tui/components/status"
	"github.com/docent-labs/docent-cli/internal/adapters/driving/tui/keymap"
	"github.com/docent-labs/docent-cli/internal/adapters/driving/tui/messages"
	"github.com/docent-labs/docent-cli/internal/adapters/driving/tui/styles"
	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/core/ports/driving"
)

// View is the question-and-answer view with input, answer panel and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QuestionInput
	statusbar *status.Bar
	spinner   spinner.Model

	assistant driving.AssistantService
	ctx       context.Context

	width    int
	height   int
	thinking bool
	question string
	answer   *domain.Answer
	err      error
}

// NewView creates a new ask view.
func NewView(s *styles.Styles, km *keymap.KeyMap, assistant driving.AssistantService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewQuestionInput(s),
		statusbar: status.NewBar(s, km),
		spinner:   sp,
		assistant: assistant,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used for ask requests.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the ask view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case spinner.TickMsg:
		if !v.thinking {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.AskCompleted:
		v.thinking = false
		v.question = msg.Question
		v.answer = msg.Answer
		v.err = msg.Err
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.statusbar.SetState(status.StateAnswered)
		}
		return v, v.input.Focus()

	case messages.StatusLoaded:
		if msg.Err == nil && msg.Status != nil {
			v.statusbar.SetChunkCount(msg.Status.ChunkCount)
			if !msg.Status.IndexPresent {
				v.statusbar.SetState(status.StateNoIndex)
			}
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		v.input.Reset()
		v.answer = nil
		v.err = nil
		v.statusbar.Clear()
		return v, v.input.Focus()
	}

	if msg.Type == tea.KeyEnter && !v.thinking {
		question := strings.TrimSpace(v.input.Value())
		if question == "" {
			return v, nil
		}
		v.thinking = true
		v.answer = nil
		v.err = nil
		v.statusbar.SetState(status.StateThinking)
		return v, tea.Batch(v.spinner.Tick, v.performAsk(question))
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// performAsk returns a command that asks the assistant.
func (v *View) performAsk(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := v.assistant.Ask(v.ctx, question, driving.AskOptions{})
		return messages.AskCompleted{
			Question: question,
			Answer:   answer,
			Err:      err,
		}
	}
}

// View renders the ask view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("docent"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	switch {
	case v.thinking:
		b.WriteString(v.spinner.View())
		b.WriteString(v.styles.Muted.Render(" thinking..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n")
	case v.answer != nil:
		b.WriteString(v.renderAnswer())
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

// renderAnswer renders the answer panel with its sources.
func (v *View) renderAnswer() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(v.question))
	b.WriteString("\n")

	panelWidth := v.width - 4
	if panelWidth < 20 {
		panelWidth = 20
	}
	b.WriteString(v.styles.Answer.Width(panelWidth).Render(v.answer.Text))
	b.WriteString("\n")

	if len(v.answer.Sources) > 0 {
		b.WriteString(v.styles.Muted.Render("Sources:"))
		b.WriteString("\n")
		for _, src := range v.answer.Sources {
			b.WriteString(v.styles.Muted.Render("  " + src))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Thinking reports whether an ask request is in flight.
func (v *View) Thinking() bool {
	return v.thinking
}

// Answer returns the last answer, or nil.
func (v *View) Answer() *domain.Answer {
	return v.answer
}

// Err returns the last error, or nil.
func (v *View) Err() error {
	return v.err
}
