// Package app holds the view state shared by every front end and the
// transitions that move it between the options and results views.
//
// Transitions are pure: each takes the old State and returns the new one,
// so front ends that own their own event loop (the TUI) can apply them
// directly while the rest go through a Controller.
package app

import (
	"errors"

	"github.com/arcanaland/shuffledraw/internal/api"
	"github.com/arcanaland/shuffledraw/internal/card"
	"github.com/arcanaland/shuffledraw/internal/draw"
)

// Mode is the view currently shown
type Mode int

const (
	ModeOptions Mode = iota
	ModeResults
)

func (m Mode) String() string {
	switch m {
	case ModeResults:
		return "results"
	default:
		return "options"
	}
}

// FallbackError is shown when a failure carries no text of its own
const FallbackError = "Failed to draw cards. Please try again."

// State is the complete view state
type State struct {
	Mode    Mode
	Loading bool
	Err     string // empty when no error banner is shown
	Cards   []card.Card
	Message string
}

// BeginDraw marks a submission as in flight and clears any previous error
func BeginDraw(s State) State {
	s.Loading = true
	s.Err = ""
	return s
}

// CompleteDraw settles a submission. Success moves to the results view;
// failure keeps the options view and sets the error banner. Loading is
// cleared either way.
func CompleteDraw(s State, result *draw.Result, err error) State {
	s.Loading = false
	if err != nil {
		s.Err = ErrorText(err)
		return s
	}
	if result == nil {
		result = &draw.Result{}
	}
	s.Cards = append([]card.Card(nil), result.DrawnCards...)
	if s.Cards == nil {
		s.Cards = []card.Card{}
	}
	s.Message = result.Message
	s.Mode = ModeResults
	return s
}

// Reset returns to the options view and drops everything from the last draw
func Reset(s State) State {
	s.Mode = ModeOptions
	s.Cards = nil
	s.Message = ""
	s.Err = ""
	return s
}

// DismissError hides the error banner and nothing else
func DismissError(s State) State {
	s.Err = ""
	return s
}

// ErrorText turns a draw failure into banner text
func ErrorText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err == nil || err.Error() == "" {
		return FallbackError
	}
	return err.Error()
}
