package quizview

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/checkpoint/internal/quiz"
	"github.com/abhisek/checkpoint/internal/router"
	"github.com/abhisek/checkpoint/internal/screen"
)

const (
	parisContent = "Paris is the capital of France."
	goodTemplate = "Question: What is the capital of France?\nAnswers: Paris, Lyon, Marseille, Nice\nCorrect Answer: Paris"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newCreator(reply string) *quiz.Creator {
	return quiz.New(quiz.ModelFunc(func(context.Context, string) (string, error) {
		return reply, nil
	}), quiz.DefaultConfig())
}

func readyQuiz(t *testing.T) *quiz.Quiz {
	t.Helper()
	q, err := newCreator(goodTemplate).CreateQuiz(context.Background(), parisContent)
	require.NoError(t, err)
	return q
}

// started returns a screen that has issued its first generation.
func started(t *testing.T, variant quiz.Variant) *QuizScreen {
	t.Helper()
	s := New(newCreator(goodTemplate), parisContent, variant)
	require.NotNil(t, s.Init())
	require.Equal(t, phaseGenerating, s.phase)
	require.Equal(t, 1, s.seq)
	return s
}

func update(s *QuizScreen, msg tea.Msg) (*QuizScreen, tea.Cmd) {
	var scr screen.Screen = s
	scr, cmd := scr.Update(msg)
	return scr.(*QuizScreen), cmd
}

func TestQuizScreen_Title(t *testing.T) {
	s := New(nil, parisContent, quiz.VariantDefault)
	assert.Equal(t, "Quiz", s.Title())
	assert.Equal(t, "default", s.Status())
}

func TestQuizScreen_ReadyMovesToAnswering(t *testing.T) {
	s := started(t, quiz.VariantDefault)
	s, _ = update(s, quizReadyMsg{Seq: 1, Quiz: readyQuiz(t)})

	assert.Equal(t, phaseAnswering, s.phase)
	view := ansi.Strip(s.View(80, 24))
	assert.Contains(t, view, "What is the capital of France?")
	assert.Contains(t, view, "A) Paris")
	assert.Contains(t, view, "D)  Nice")
}

func TestQuizScreen_StaleResultIgnored(t *testing.T) {
	s := started(t, quiz.VariantDefault)
	s, _ = update(s, quizReadyMsg{Seq: 0, Quiz: readyQuiz(t)})
	assert.Equal(t, phaseGenerating, s.phase)
	assert.Nil(t, s.quiz)
}

func TestQuizScreen_AnswerCorrect(t *testing.T) {
	s := started(t, quiz.VariantDefault)
	s, _ = update(s, quizReadyMsg{Seq: 1, Quiz: readyQuiz(t)})
	s, _ = update(s, keyPress('a'))

	require.Equal(t, phaseAnswered, s.phase)
	assert.True(t, s.attempt.IsCorrect)
	assert.Equal(t, "Paris", s.attempt.SelectedAnswer)
	assert.Contains(t, ansi.Strip(s.View(80, 24)), "Correct!")
}

func TestQuizScreen_AnswerIncorrectWithArrows(t *testing.T) {
	s := started(t, quiz.VariantDefault)
	s, _ = update(s, quizReadyMsg{Seq: 1, Quiz: readyQuiz(t)})
	s, _ = update(s, specialKey(tea.KeyDown))
	s, _ = update(s, specialKey(tea.KeyEnter))

	require.Equal(t, phaseAnswered, s.phase)
	assert.False(t, s.attempt.IsCorrect)
	assert.Equal(t, "Lyon", s.attempt.SelectedAnswer)
	view := ansi.Strip(s.View(80, 24))
	assert.Contains(t, view, "Incorrect")
	assert.Contains(t, view, "Correct answer: A) Paris")
}

func TestQuizScreen_AnsweredNavigation(t *testing.T) {
	s := started(t, quiz.VariantDefault)
	s, _ = update(s, quizReadyMsg{Seq: 1, Quiz: readyQuiz(t)})
	s, _ = update(s, keyPress('a'))

	_, cmd := update(s, specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, router.HomeMsg{}, cmd())

	_, cmd = update(s, specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.Equal(t, router.BackMsg{}, cmd())

	_, cmd = update(s, keyPress('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuizScreen_FailureOffersOtherVariants(t *testing.T) {
	s := started(t, quiz.VariantDefault)
	failure := &quiz.ParseError{Reason: "no question line", Raw: "nonsense"}
	s, _ = update(s, quizReadyMsg{Seq: 1, Err: failure})

	require.Equal(t, phaseFailed, s.phase)
	labels := make([]string, 0, len(s.menu.Items))
	for _, item := range s.menu.Items {
		labels = append(labels, item.Label)
	}
	assert.Equal(t, []string{
		"Retry with structured-output",
		"Retry with constrained-template",
		"Edit content",
	}, labels)
	assert.Contains(t, ansi.Strip(s.View(80, 24)), "parse-failure")

	s, cmd := update(s, specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, quiz.VariantStructured, s.variant)
	assert.Equal(t, phaseGenerating, s.phase)
	assert.Equal(t, 2, s.seq)
}

func TestQuizScreen_EmptyContentOnlyEdits(t *testing.T) {
	s := started(t, quiz.VariantDefault)
	s, _ = update(s, quizReadyMsg{Seq: 1, Err: quiz.ErrEmptyContent})

	require.Len(t, s.menu.Items, 1)
	assert.Equal(t, "Edit content", s.menu.Items[0].Label)

	_, cmd := update(s, specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, router.BackMsg{}, cmd())
}

func TestQuizScreen_CancelWhileGenerating(t *testing.T) {
	s := started(t, quiz.VariantDefault)
	s, cmd := update(s, specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.Equal(t, router.BackMsg{}, cmd())

	s, _ = update(s, quizReadyMsg{Seq: 1, Quiz: readyQuiz(t)})
	assert.Equal(t, phaseGenerating, s.phase)
}

// blockingCreator hands out the context of each call and waits for it to end.
type blockingCreator struct {
	calls chan context.Context
}

func (b blockingCreator) CreateQuiz(ctx context.Context, _ string, _ ...quiz.CreateOption) (*quiz.Quiz, error) {
	b.calls <- ctx
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestQuizScreen_EscCancelsModelCall(t *testing.T) {
	creator := blockingCreator{calls: make(chan context.Context, 1)}
	s := New(creator, parisContent, quiz.VariantDefault)

	batch, ok := s.Init()().(tea.BatchMsg)
	require.True(t, ok)
	done := make(chan tea.Msg, 1)
	go func() { done <- batch[0]() }()

	var ctx context.Context
	select {
	case ctx = <-creator.calls:
	case <-time.After(time.Second):
		t.Fatal("model call never started")
	}

	update(s, specialKey(tea.KeyEscape))

	select {
	case msg := <-done:
		ready, ok := msg.(quizReadyMsg)
		require.True(t, ok)
		assert.ErrorIs(t, ready.Err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("model call was not canceled")
	}
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestQuizScreen_NewGenerationCancelsPrevious(t *testing.T) {
	creator := blockingCreator{calls: make(chan context.Context, 1)}
	s := New(creator, parisContent, quiz.VariantDefault)

	batch := s.Init()().(tea.BatchMsg)
	go batch[0]()
	first := <-creator.calls

	s.generate()
	select {
	case <-first.Done():
	case <-time.After(time.Second):
		t.Fatal("first call still running")
	}
	assert.Equal(t, 2, s.seq)

	s, _ = update(s, quizReadyMsg{Seq: 2, Quiz: readyQuiz(t)})
	assert.Nil(t, s.cancel)
	assert.Equal(t, phaseAnswering, s.phase)
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := started(t, quiz.VariantDefault)
	assert.Equal(t, "Esc", s.KeyHints()[0].Key)

	s, _ = update(s, quizReadyMsg{Seq: 1, Quiz: readyQuiz(t)})
	assert.Equal(t, "A-D", s.KeyHints()[0].Key)
}
