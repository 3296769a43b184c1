// Package screen defines what the router needs from a screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/checkpoint/internal/ui/layout"
)

// Screen is one full-window view of the app.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the area between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider screens choose their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider screens show a short status on the right of the header.
type StatusProvider interface {
	Status() string
}

// Resumer screens are told when they are back on top after the screen
// above them was removed.
type Resumer interface {
	Resume() tea.Cmd
}
