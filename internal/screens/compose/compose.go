package compose

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkpoint/internal/display"
	"github.com/abhisek/checkpoint/internal/quiz"
	"github.com/abhisek/checkpoint/internal/router"
	"github.com/abhisek/checkpoint/internal/screen"
	"github.com/abhisek/checkpoint/internal/screens/quizview"
	"github.com/abhisek/checkpoint/internal/ui/components"
	"github.com/abhisek/checkpoint/internal/ui/layout"
	"github.com/abhisek/checkpoint/internal/ui/theme"
)

// ComposeScreen collects the source content and the prompt variant.
type ComposeScreen struct {
	creator quizview.Creator
	input   components.TextInput
	variant quiz.Variant
}

var _ screen.Screen = (*ComposeScreen)(nil)
var _ screen.KeyHintProvider = (*ComposeScreen)(nil)
var _ screen.StatusProvider = (*ComposeScreen)(nil)
var _ screen.Resumer = (*ComposeScreen)(nil)

// New creates the compose screen. content pre-fills the input.
func New(creator quizview.Creator, variant quiz.Variant, content string) *ComposeScreen {
	input := components.NewTextInput("Paste a passage to be quizzed on...", 0)
	input.SetValue(content)
	return &ComposeScreen{
		creator: creator,
		input:   input,
		variant: variant,
	}
}

func (s *ComposeScreen) Init() tea.Cmd {
	return s.input.Init()
}

// Resume refocuses the input when a quiz is closed.
func (s *ComposeScreen) Resume() tea.Cmd {
	return s.input.Init()
}

func (s *ComposeScreen) Title() string {
	return "New Quiz"
}

func (s *ComposeScreen) Status() string {
	return string(s.variant)
}

func (s *ComposeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Create quiz"},
		{Key: "Tab", Description: "Variant"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Variant returns the selected prompt variant.
func (s *ComposeScreen) Variant() quiz.Variant {
	return s.variant
}

func (s *ComposeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			s.variant = nextVariant(s.variant)
			return s, nil
		case "enter":
			qs := quizview.New(s.creator, s.input.Value(), s.variant)
			return s, router.Goto(qs)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ComposeScreen) View(width, height int) string {
	cardWidth := min(width-4, 76)

	var b strings.Builder
	b.WriteString(theme.Prompt.Render("What should the question be about?"))
	b.WriteString("\n\n")
	// Card border and padding take 6 cells, the prompt 2 more.
	b.WriteString(s.input.View(cardWidth - 9))
	b.WriteString("\n\n")

	var variants []string
	for _, v := range quiz.Variants {
		if v == s.variant {
			variants = append(variants, theme.Selected.Render("▸ "+string(v)))
		} else {
			variants = append(variants, theme.Unselected.Render("  "+string(v)))
		}
	}
	b.WriteString(theme.Hint.Render("Prompt variant"))
	b.WriteString("\n")
	b.WriteString(strings.Join(variants, "\n"))

	card := display.Card(b.String(), cardWidth)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func nextVariant(v quiz.Variant) quiz.Variant {
	for i, candidate := range quiz.Variants {
		if candidate == v {
			return quiz.Variants[(i+1)%len(quiz.Variants)]
		}
	}
	return quiz.Variants[0]
}
