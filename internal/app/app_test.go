package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/checkpoint/internal/quiz"
	"github.com/abhisek/checkpoint/internal/screens/compose"
	"github.com/abhisek/checkpoint/internal/screens/quizview"
)

func TestNewAppModel_StartsOnCompose(t *testing.T) {
	m := newAppModel(Options{Variant: quiz.VariantDefault})
	assert.Equal(t, 1, m.router.Depth())
	assert.IsType(t, &compose.ComposeScreen{}, m.router.Active())
}

func TestNewAppModel_ContentSkipsCompose(t *testing.T) {
	m := newAppModel(Options{Variant: quiz.VariantStructured, Content: "Paris is the capital of France."})
	require.Equal(t, 2, m.router.Depth())
	assert.IsType(t, &quizview.QuizScreen{}, m.router.Active())
	assert.NotNil(t, m.Init())
}

func TestAppModel_BackFromQuizResumesCompose(t *testing.T) {
	m := newAppModel(Options{Variant: quiz.VariantDefault, Content: "Paris is the capital of France."})
	model, cmd := m.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)

	model, cmd = model.Update(cmd())
	app := model.(AppModel)
	assert.Equal(t, 1, app.router.Depth())
	assert.IsType(t, &compose.ComposeScreen{}, app.router.Active())
	assert.NotNil(t, cmd, "compose should refocus its input")
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Variant: quiz.VariantDefault})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_ViewShowsHeaderStatus(t *testing.T) {
	var model tea.Model = newAppModel(Options{Variant: quiz.VariantConstrained})
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	content := ansi.Strip(model.(AppModel).render())
	assert.Contains(t, content, "Checkpoint")
	assert.Contains(t, content, "New Quiz")
	assert.Contains(t, content, "constrained-template")
	assert.Contains(t, content, "Create quiz")
}

func TestAppModel_TooSmall(t *testing.T) {
	var model tea.Model = newAppModel(Options{Variant: quiz.VariantDefault})
	model, _ = model.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.NotContains(t, model.(AppModel).render(), "New Quiz")
}
