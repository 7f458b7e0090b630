// Package status provides the status bar of the paste pad.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/marktext/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/marktext/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/marktext/internal/core/domain"
)

// State represents the current pad state for display.
type State string

const (
	StateReady     State = "ready"
	StateAnalysing State = "analysing"
	StateAnalysed  State = "analysed"
	StateSaved     State = "saved"
	StateError     State = "error"
)

// Bar displays the paste verdict and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	mode    domain.PasteMode
	blocks  int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateAnalysing:
		return s.styles.Muted.Render("Analysing...")
	case StateAnalysed:
		return s.renderVerdict()
	case StateSaved:
		return s.styles.Normal.Render(fmt.Sprintf("Saved %s", s.message))
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateReady:
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) renderVerdict() string {
	badge := s.styles.Plain.Render(string(s.mode))
	if s.mode == domain.PasteMarkdown || s.mode == domain.PasteHTML {
		badge = s.styles.Markdown.Render(string(s.mode))
	}
	return fmt.Sprintf("%s %s", badge, s.styles.Muted.Render(fmt.Sprintf("%d blocks", s.blocks)))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	if s.state == StateAnalysed {
		bindings = append([]key.Binding{s.keymap.Save}, bindings...)
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetVerdict records the paste mode and block count and switches to the
// analysed state.
func (s *Bar) SetVerdict(mode domain.PasteMode, blocks int) {
	s.state = StateAnalysed
	s.mode = mode
	s.blocks = blocks
}

// Mode returns the last paste mode.
func (s *Bar) Mode() domain.PasteMode {
	return s.mode
}

// Blocks returns the last block count.
func (s *Bar) Blocks() int {
	return s.blocks
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.mode = ""
	s.blocks = 0
}
