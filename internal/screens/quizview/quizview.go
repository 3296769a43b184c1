package quizview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkpoint/internal/display"
	"github.com/abhisek/checkpoint/internal/quiz"
	"github.com/abhisek/checkpoint/internal/router"
	"github.com/abhisek/checkpoint/internal/screen"
	"github.com/abhisek/checkpoint/internal/ui/components"
	"github.com/abhisek/checkpoint/internal/ui/layout"
	"github.com/abhisek/checkpoint/internal/ui/theme"
)

// Creator is the quiz creation capability the screen drives.
type Creator interface {
	CreateQuiz(ctx context.Context, content string, opts ...quiz.CreateOption) (*quiz.Quiz, error)
}

type phase int

const (
	phaseGenerating phase = iota
	phaseFailed
	phaseAnswering
	phaseAnswered
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// QuizScreen generates a quiz for some content, lets the user answer it and
// shows the result. On failure it offers the other prompt variants.
type QuizScreen struct {
	creator Creator
	content string
	variant quiz.Variant

	phase   phase
	seq     int
	cancel  context.CancelFunc
	frame   int
	quiz    *quiz.Quiz
	err     error
	choice  components.MultiChoice
	attempt quiz.Attempt
	menu    components.Menu
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen that starts generating on Init.
func New(creator Creator, content string, variant quiz.Variant) *QuizScreen {
	return &QuizScreen{creator: creator, content: content, variant: variant}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.generate()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	return string(s.variant)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFailed:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "A-D", Description: "Answer"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
		}
	case phaseAnswered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "New quiz"},
			{Key: "Esc", Description: "Back"},
			{Key: "q", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleReady(msg)

	case spinnerTickMsg:
		if s.phase != phaseGenerating {
			return s, nil
		}
		s.frame = (s.frame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.seq {
		return s, nil
	}
	s.stop()
	if msg.Err != nil {
		s.phase = phaseFailed
		s.err = msg.Err
		s.menu = s.failureMenu()
		return s, nil
	}
	s.phase = phaseAnswering
	s.quiz = msg.Quiz
	s.choice = components.NewMultiChoice(msg.Quiz.Question(), msg.Quiz.Answers(), msg.Quiz.CorrectIndex())
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseGenerating:
		if msg.String() == "esc" {
			s.stop()
			s.seq++ // drop the in-flight result
			return s, router.Back
		}

	case phaseFailed:
		if msg.String() == "esc" {
			return s, router.Back
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd

	case phaseAnswering:
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Submitted {
			s.attempt = quiz.SubmitAnswer(s.quiz, s.choice.Chosen())
			s.phase = phaseAnswered
		}

	case phaseAnswered:
		switch msg.String() {
		case "enter":
			return s, router.Home
		case "esc":
			return s, router.Back
		case "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

// failureMenu offers a retry with each other variant. Empty content gets
// only the way back since no variant can help.
func (s *QuizScreen) failureMenu() components.Menu {
	var items []components.MenuItem
	if quiz.KindOf(s.err) != quiz.KindEmptyInput {
		for _, v := range quiz.Variants {
			if v == s.variant {
				continue
			}
			items = append(items, components.MenuItem{
				Label:  "Retry with " + string(v),
				Action: s.retryWith(v),
			})
		}
	}
	items = append(items, components.MenuItem{
		Label:  "Edit content",
		Action: func() tea.Cmd { return router.Back },
	})
	return components.NewMenu(items)
}

func (s *QuizScreen) retryWith(v quiz.Variant) func() tea.Cmd {
	return func() tea.Cmd {
		s.variant = v
		s.err = nil
		return s.generate()
	}
}

func (s *QuizScreen) generate() tea.Cmd {
	s.stop()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.phase = phaseGenerating
	s.seq++
	seq, content, variant, creator := s.seq, s.content, s.variant, s.creator
	return tea.Batch(
		func() tea.Msg {
			q, err := creator.CreateQuiz(ctx, content, quiz.WithVariant(variant))
			return quizReadyMsg{Seq: seq, Quiz: q, Err: err}
		},
		spinnerTick(),
	)
}

// stop cancels the in-flight generation, if any.
func (s *QuizScreen) stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *QuizScreen) View(width, height int) string {
	var body string
	switch s.phase {
	case phaseGenerating:
		body = theme.Dimmed.Render(fmt.Sprintf("%s Generating a quiz (%s)...", spinnerFrames[s.frame], s.variant))
	case phaseFailed:
		body = display.Failure(s.err) + "\n" + s.menu.View()
	case phaseAnswering:
		body = s.choice.View()
	case phaseAnswered:
		body = s.choice.View() + "\n" + display.Attempt(s.attempt)
	}

	cardWidth := min(width-4, 76)
	card := display.Card(strings.TrimRight(body, "\n"), cardWidth)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
