package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a single-line field for the passage a quiz is made from.
// Pasted newlines are folded into spaces by the underlying model.
type TextInput struct {
	field textinput.Model
}

// NewTextInput returns a focused input. limit 0 accepts any length.
func NewTextInput(placeholder string, limit int) TextInput {
	f := textinput.New()
	f.Placeholder = placeholder
	f.CharLimit = limit
	f.Prompt = "› "
	f.Focus()
	return TextInput{field: f}
}

// Init starts the cursor blinking.
func (t TextInput) Init() tea.Cmd {
	return t.field.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.field, cmd = t.field.Update(msg)
	return t, cmd
}

// View renders at most width cells, scrolling long passages horizontally.
func (t TextInput) View(width int) string {
	if width > 0 {
		t.field.SetWidth(width)
	}
	return t.field.View()
}

func (t TextInput) Value() string {
	return t.field.Value()
}

func (t *TextInput) SetValue(s string) {
	t.field.SetValue(s)
	t.field.CursorEnd()
}

// Blank reports whether only whitespace has been entered.
func (t TextInput) Blank() bool {
	return strings.TrimSpace(t.field.Value()) == ""
}
