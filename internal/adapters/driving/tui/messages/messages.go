// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/docent-labs/docent-cli/internal/core/domain"
)

// AskCompleted carries the answer for a submitted question back to the model.
type AskCompleted struct {
	Question string
	Answer   *domain.Answer
	Err      error
}

// StatusLoaded carries the index status for the status bar.
type StatusLoaded struct {
	Status *domain.IndexStatus
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
