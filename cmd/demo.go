package cmd

import (
	"fmt"
	"io"

	"github.com/abhisek/checkpoint/internal/demo"
	"github.com/abhisek/checkpoint/internal/display"
	"github.com/abhisek/checkpoint/internal/quiz"
	"github.com/abhisek/checkpoint/internal/ui/theme"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show how prompt variants recover from unreliable model output",
	Long: "Runs built-in scenarios against a scripted model. Each scenario fails with the\n" +
		"baseline prompt variant and succeeds with an alternative one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0

		for _, sc := range demo.Scenarios() {
			outcomes := sc.Run(cmd.Context(), quiz.DefaultConfig())
			if !printScenario(out, sc, outcomes) {
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d scenario(s) did not behave as expected", failed)
		}
		return nil
	},
}

// printScenario writes one scenario's outcomes and reports whether all of
// them matched expectations.
func printScenario(w io.Writer, sc demo.Scenario, outcomes []demo.Outcome) bool {
	display.Fprint(w, theme.Heading.Render(sc.Name))
	display.Fprint(w, theme.Hint.Render(sc.Description))

	ok := true
	for _, o := range outcomes {
		mark := theme.Correct.Render("✓")
		if !sc.Passed(o) {
			mark = theme.Incorrect.Render("✗")
			ok = false
		}

		var detail string
		if o.Err != nil {
			detail = fmt.Sprintf("%s: %v", quiz.KindOf(o.Err), o.Err)
		} else {
			detail = "quiz: " + o.Quiz.Question()
		}
		display.Fprint(w, fmt.Sprintf("  %s %-22s %d call(s)  %s", mark, o.Variant, o.Calls, detail))
	}
	display.Fprint(w, "")
	return ok
}
