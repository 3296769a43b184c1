// Package theme holds the colors and text styles shared by the TUI and the
// plain CLI output.
package theme

import "charm.land/lipgloss/v2"

var (
	Brand     = lipgloss.Color("#6366F1") // indigo
	Highlight = lipgloss.Color("#F59E0B") // amber
	Good      = lipgloss.Color("#10B981")
	Bad       = lipgloss.Color("#EF4444")
	Ink       = lipgloss.Color("#E2E8F0")
	Muted     = lipgloss.Color("#64748B")
	Surface   = lipgloss.Color("#111827")
	Rule      = lipgloss.Color("#374151")
)

var (
	Heading = lipgloss.NewStyle().Foreground(Brand).Bold(true)
	Prompt  = lipgloss.NewStyle().Foreground(Muted)
	Body    = lipgloss.NewStyle().Foreground(Ink)
	Hint    = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	Dimmed  = lipgloss.NewStyle().Foreground(Muted)
)

// Option states in a multiple-choice list.
var (
	Selected   = lipgloss.NewStyle().Foreground(Brand).Bold(true)
	Unselected = Body
	Correct    = lipgloss.NewStyle().Foreground(Good).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Bad).Bold(true)
)

// Chrome around screens.
var (
	Bar    = lipgloss.NewStyle().Background(Surface).Foreground(Ink).Padding(0, 1)
	KeyCap = lipgloss.NewStyle().Foreground(Ink).Bold(true)
	Status = lipgloss.NewStyle().Foreground(Highlight)
	Card   = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Rule).
		Padding(1, 2)
)
