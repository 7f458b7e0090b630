// Package styles provides colour themes and styling for the paste pad.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the paste pad.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary marks the preview pane.
	Secondary lipgloss.Color

	Foreground lipgloss.Color
	Muted      lipgloss.Color

	// Markdown colours a positive classifier verdict.
	Markdown lipgloss.Color

	// Plain colours a negative classifier verdict.
	Plain lipgloss.Color

	Error  lipgloss.Color
	Border lipgloss.Color

	// Focus is the border colour of the focused pane.
	Focus lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Markdown:   lipgloss.Color("#A6E3A1"), // Green
		Plain:      lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"),
		Focus:      lipgloss.Color("#7C3AED"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title  lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style

	// Markdown and Plain render the classifier verdict badge.
	Markdown lipgloss.Style
	Plain    lipgloss.Style

	// Pane and FocusedPane frame the input and preview panes.
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Markdown: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Markdown),

		Plain: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Plain),

		Pane:        pane,
		FocusedPane: pane.BorderForeground(theme.Focus),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
