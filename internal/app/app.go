package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkpoint/internal/quiz"
	"github.com/abhisek/checkpoint/internal/router"
	"github.com/abhisek/checkpoint/internal/screen"
	"github.com/abhisek/checkpoint/internal/screens/compose"
	"github.com/abhisek/checkpoint/internal/screens/quizview"
	"github.com/abhisek/checkpoint/internal/ui/layout"
)

// Options configures the interactive quiz program.
type Options struct {
	Creator quizview.Creator
	Variant quiz.Variant

	// Content, when non-empty, skips the compose screen and generates a
	// quiz straight away. Popping the quiz lands on compose pre-filled.
	Content string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
	init   tea.Cmd
}

// newAppModel creates a new AppModel with the compose screen at the bottom
// of the stack.
func newAppModel(opts Options) AppModel {
	base := compose.New(opts.Creator, opts.Variant, opts.Content)
	r := router.New(base)
	init := base.Init()
	if opts.Content != "" {
		init = tea.Batch(init, r.Push(quizview.New(opts.Creator, opts.Content, opts.Variant)))
	}
	return AppModel{router: r, init: init}
}

func (m AppModel) Init() tea.Cmd {
	return m.init
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render frames the active screen between the header and footer bars.
func (m AppModel) render() string {
	switch {
	case m.width == 0 || m.height == 0:
		return ""
	case layout.IsTooSmall(m.width, m.height):
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), statusOf(active), m.width)
	footer := layout.RenderFooter(hintsOf(active), m.width)

	room := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	body := m.router.View(m.width, max(room, 0))
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

func statusOf(s screen.Screen) string {
	if sp, ok := s.(screen.StatusProvider); ok {
		return sp.Status()
	}
	return ""
}

var quitHint = []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}

func hintsOf(s screen.Screen) []layout.KeyHint {
	if kp, ok := s.(screen.KeyHintProvider); ok {
		return kp.KeyHints()
	}
	return quitHint
}

// Run blocks until the user quits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(newAppModel(opts)).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
