// Package keymap defines keybindings for the paste pad.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the paste pad.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the full help.
	Help key.Binding

	// Analyse pastes the pad into a fresh tree and previews the result.
	Analyse key.Binding

	// Save stores the preview as a document.
	Save key.Binding

	// Clear empties the pad and the preview.
	Clear key.Binding

	// SwitchPane moves focus between the pad and the preview.
	SwitchPane key.Binding

	// Up and Down scroll the preview.
	Up   key.Binding
	Down key.Binding
}

// DefaultKeyMap returns the default keybindings.
// Plain letters are left to the pad, so every binding uses a modifier.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Analyse: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "analyse"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Analyse, k.SwitchPane, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped for the help panel.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Analyse, k.Save, k.Clear},
		{k.SwitchPane, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
