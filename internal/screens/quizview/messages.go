package quizview

import (
	"time"

	"github.com/abhisek/checkpoint/internal/quiz"
)

// quizReadyMsg carries the result of one CreateQuiz call. Seq ties it to
// the generation that issued it so results of abandoned runs are dropped.
type quizReadyMsg struct {
	Seq  int
	Quiz *quiz.Quiz
	Err  error
}

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time
