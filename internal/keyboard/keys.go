package keyboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Keys holds all keyboard shortcut configurations for the launcher
type Keys struct {
	// Result navigation
	Up   key.Binding // Move selection up
	Down key.Binding // Move selection down

	// Actions
	Select key.Binding // Run the selected item's action
	Copy   key.Binding // Copy the selected context name
	Clear  key.Binding // Clear the search term

	// Global
	Quit key.Binding // Quit the launcher
}

// Default returns the default keyboard configuration
func Default() *Keys {
	return &Keys{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "switch"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy name"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp renders the one-line key hint shown under the results
func (k *Keys) ShortHelp() string {
	bindings := []key.Binding{k.Up, k.Down, k.Select, k.Copy, k.Clear, k.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
