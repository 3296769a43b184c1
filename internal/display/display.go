// Package display renders quizzes and attempts for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/checkpoint/internal/quiz"
	"github.com/abhisek/checkpoint/internal/ui/theme"
)

// Letters labels answer options in display order.
var Letters = []string{"A", "B", "C", "D"}

// Letter returns the label for the zero-based option index i.
func Letter(i int) string {
	if i >= 0 && i < len(Letters) {
		return Letters[i]
	}
	return fmt.Sprintf("%d", i+1)
}

// Quiz renders the question and lettered options. The correct answer is
// shown only when reveal is set.
func Quiz(q *quiz.Quiz, reveal bool) string {
	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render(q.Question()))
	b.WriteString("\n\n")

	correct := q.CorrectIndex()
	for i, a := range q.Answers() {
		line := fmt.Sprintf("  %s) %s", Letter(i), a)
		if reveal && i == correct {
			line = theme.Correct.Render(line)
		} else {
			line = theme.Unselected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if reveal {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Correct answer: %s) %s", Letter(correct), q.CorrectAnswer())))
		b.WriteString("\n")
	}

	return b.String()
}

// Attempt renders the selected answer, the verdict and the correct answer.
func Attempt(a quiz.Attempt) string {
	var b strings.Builder

	verdict := theme.Correct.Render("✓ Correct!")
	if !a.IsCorrect {
		verdict = theme.Incorrect.Render("✗ Incorrect")
	}

	b.WriteString(theme.Body.Render("Your answer: " + a.SelectedAnswer))
	b.WriteString("\n")
	b.WriteString(verdict)
	b.WriteString("\n")

	if a.Quiz != nil && !a.IsCorrect {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Correct answer: %s) %s",
			Letter(a.Quiz.CorrectIndex()), a.Quiz.CorrectAnswer())))
		b.WriteString("\n")
	}

	return b.String()
}

// Failure renders a quiz creation error with its classification.
func Failure(err error) string {
	kind := quiz.KindOf(err)
	head := theme.Incorrect.Render(fmt.Sprintf("Quiz creation failed (%s)", kind))
	return head + "\n" + theme.Hint.Render(err.Error()) + "\n"
}

// Card wraps rendered content in the theme's bordered card.
func Card(content string, width int) string {
	style := theme.Card
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.TrimRight(content, "\n"))
}

// Fprint writes s followed by a newline.
func Fprint(w io.Writer, s string) {
	lipgloss.Fprintln(w, s)
}
