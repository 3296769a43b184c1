package components

import "charm.land/bubbles/v2/key"

var (
	upKey      = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	downKey    = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	confirmKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
)

// shortcut returns the position a single-key shortcut points at within
// first..first+n, or -1. Letters are case-insensitive.
func shortcut(k string, first rune, n int) int {
	r := []rune(k)
	if len(r) != 1 {
		return -1
	}
	c := r[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	i := int(c - first)
	if i < 0 || i >= n {
		return -1
	}
	return i
}
