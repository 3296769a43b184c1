package quiz

// SubmitAnswer records an answer against q. It never fails: the attempt is
// correct exactly when answer equals the quiz's correct answer, byte for
// byte.
func SubmitAnswer(q *Quiz, answer string) Attempt {
	a := Attempt{Quiz: q, SelectedAnswer: answer}
	if q != nil {
		a.IsCorrect = answer == q.correctAnswer
	}
	return a
}
