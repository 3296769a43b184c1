package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/checkpoint/internal/ui/theme"
)

type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a numbered list of actions. Enter runs the item under the
// cursor; a digit runs that item directly.
type Menu struct {
	Items  []MenuItem
	Cursor int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, upKey):
		m.Cursor = (m.Cursor - 1 + len(m.Items)) % len(m.Items)
	case key.Matches(kmsg, downKey):
		m.Cursor = (m.Cursor + 1) % len(m.Items)
	case key.Matches(kmsg, confirmKey):
		return m, m.run(m.Cursor)
	default:
		if i := shortcut(kmsg.String(), '1', min(len(m.Items), 9)); i >= 0 {
			m.Cursor = i
			return m, m.run(i)
		}
	}
	return m, nil
}

func (m Menu) run(i int) tea.Cmd {
	if act := m.Items[i].Action; act != nil {
		return act()
	}
	return nil
}

func (m Menu) View() string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == m.Cursor {
			lines[i] = theme.Selected.Render("▸ " + label)
		} else {
			lines[i] = theme.Unselected.Render("  " + label)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
