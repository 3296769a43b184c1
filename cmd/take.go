package cmd

import (
	"github.com/abhisek/checkpoint/internal/app"
	"github.com/spf13/cobra"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Create and answer quizzes interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		return runTake(cmd, file)
	},
}

// runTake builds the provider stack and launches the TUI.
func runTake(cmd *cobra.Command, file string) error {
	content, err := readContent(cmd, file)
	if err != nil {
		return err
	}
	variant, err := resolveVariant(cmd)
	if err != nil {
		return err
	}

	creator, closeFn, err := buildCreator(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	return app.Run(app.Options{
		Creator: creator,
		Variant: variant,
		Content: content,
	})
}

func init() {
	takeCmd.Flags().StringP("file", "f", "", "Start with the passage in this file")
	takeCmd.Flags().StringP("variant", "v", "", "Prompt variant: default, structured-output, constrained-template")
	rootCmd.Flags().StringP("variant", "v", "", "Prompt variant: default, structured-output, constrained-template")
}
