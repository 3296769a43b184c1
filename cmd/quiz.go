package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/checkpoint/internal/display"
	"github.com/abhisek/checkpoint/internal/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [content...]",
	Short: "Create one quiz from a passage and optionally answer it",
	Example: `  checkpoint quiz --file notes.txt
  echo "Paris is the capital of France." | checkpoint quiz --file - --answer A
  checkpoint quiz --variant structured-output --json "The Seine flows through Paris."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		answer, _ := cmd.Flags().GetString("answer")
		asJSON, _ := cmd.Flags().GetBool("json")

		content, err := readContent(cmd, file)
		if err != nil {
			return err
		}
		if file == "" {
			content = strings.Join(args, " ")
		}

		variant, err := resolveVariant(cmd)
		if err != nil {
			return err
		}

		// Empty input needs no provider, so it is reported before one is
		// configured.
		if strings.TrimSpace(content) == "" {
			return creationFailed(cmd, asJSON, quiz.ErrEmptyContent)
		}

		ctx := cmd.Context()
		creator, closeFn, err := buildCreator(ctx, cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		q, err := creator.CreateQuiz(ctx, content, quiz.WithVariant(variant))
		if err != nil {
			return creationFailed(cmd, asJSON, err)
		}

		var attempt *quiz.Attempt
		if answer != "" {
			a := quiz.SubmitAnswer(q, q.AnswerAt(answer))
			attempt = &a
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return writeQuizJSON(cmd, q, attempt)
		}

		display.Fprint(out, display.Quiz(q, attempt != nil))
		if attempt != nil {
			display.Fprint(out, display.Attempt(*attempt))
		}
		return nil
	},
}

func creationFailed(cmd *cobra.Command, asJSON bool, err error) error {
	if !asJSON {
		display.Fprint(cmd.ErrOrStderr(), display.Failure(err))
	}
	return fmt.Errorf("create quiz (%s): %w", quiz.KindOf(err), err)
}

type attemptJSON struct {
	SelectedAnswer string `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

func writeQuizJSON(cmd *cobra.Command, q *quiz.Quiz, a *quiz.Attempt) error {
	doc := struct {
		Quiz    *quiz.Quiz   `json:"quiz"`
		Attempt *attemptJSON `json:"attempt,omitempty"`
	}{Quiz: q}
	if a != nil {
		doc.Attempt = &attemptJSON{SelectedAnswer: a.SelectedAnswer, IsCorrect: a.IsCorrect}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func init() {
	quizCmd.Flags().StringP("file", "f", "", "Read the passage from a file (- for stdin)")
	quizCmd.Flags().StringP("variant", "v", "", "Prompt variant: default, structured-output, constrained-template")
	quizCmd.Flags().StringP("answer", "a", "", "Submit an answer: A-D, 1-4 or the answer text")
	quizCmd.Flags().Bool("json", false, "Print the quiz (and attempt) as JSON")
}
