// Package messages defines Bubbletea message types for the paste pad.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/marktext/internal/core/domain"
)

// AnalysisRequested asks the pad to paste its content into a fresh tree.
type AnalysisRequested struct {
	Event domain.PasteEvent
}

// AnalysisCompleted carries the outcome of pasting the pad content.
type AnalysisCompleted struct {
	// Likely is the classifier verdict for the pad text.
	Likely bool

	// Mode is the path the paste took.
	Mode domain.PasteMode

	// Blocks is the number of top-level blocks the paste produced.
	Blocks int

	// Markdown is the exported tree after the paste.
	Markdown string

	Err error
}

// DocumentSaved is sent after the preview was stored.
type DocumentSaved struct {
	Document *domain.Document
	Err      error
}

// PaneChanged is sent when focus moves between panes.
type PaneChanged struct {
	Pane Pane
}

// Pane identifies a region of the pad.
type Pane int

const (
	// PaneInput is the editable pad.
	PaneInput Pane = iota
	// PanePreview is the read-only normalised preview.
	PanePreview
)

// String returns the string representation of the pane.
func (p Pane) String() string {
	switch p {
	case PaneInput:
		return "input"
	case PanePreview:
		return "preview"
	default:
		return "unknown"
	}
}

// Next returns the pane that follows p in tab order.
func (p Pane) Next() Pane {
	if p == PaneInput {
		return PanePreview
	}
	return PaneInput
}

// ErrorOccurred is sent when an error occurs.
type ErrorOccurred struct {
	Err error
}

// Quit is sent to exit the application.
type Quit struct{}
