package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/checkpoint/internal/ui/theme"
)

// MultiChoice asks one lettered question. An answer is given either by
// moving the cursor and pressing Enter or by typing its letter; after
// that the component is frozen and shows the verdict.
type MultiChoice struct {
	Question  string
	Options   []string
	Correct   int
	Cursor    int
	Submitted bool

	chosen int
}

func NewMultiChoice(question string, options []string, correct int) MultiChoice {
	return MultiChoice{Question: question, Options: options, Correct: correct, chosen: -1}
}

func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || m.Submitted {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, upKey):
		m.Cursor = max(m.Cursor-1, 0)
	case key.Matches(kmsg, downKey):
		m.Cursor = min(m.Cursor+1, len(m.Options)-1)
	case key.Matches(kmsg, confirmKey):
		m.submit(m.Cursor)
	default:
		if i := shortcut(kmsg.String(), 'a', len(m.Options)); i >= 0 {
			m.Cursor = i
			m.submit(i)
		}
	}
	return m, nil
}

func (m *MultiChoice) submit(i int) {
	m.chosen = i
	m.Submitted = true
}

// Chosen returns the picked option, or "" while unanswered.
func (m MultiChoice) Chosen() string {
	if m.chosen < 0 {
		return ""
	}
	return m.Options[m.chosen]
}

// ChosenIndex is -1 while unanswered.
func (m MultiChoice) ChosenIndex() int {
	return m.chosen
}

func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.chosen == m.Correct
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		line := fmt.Sprintf("%c) %s", 'A'+i, opt)
		switch {
		case !m.Submitted && i == m.Cursor:
			line = theme.Selected.Render("▸ " + line)
		case !m.Submitted:
			line = theme.Unselected.Render("  " + line)
		case i == m.Correct:
			line = theme.Correct.Render("✓ " + line)
		case i == m.chosen:
			line = theme.Incorrect.Render("✗ " + line)
		default:
			line = theme.Dimmed.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
