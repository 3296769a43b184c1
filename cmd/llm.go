package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/abhisek/checkpoint/internal/display"
	"github.com/abhisek/checkpoint/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the log of model calls made while creating quizzes",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent model calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		since, _ := cmd.Flags().GetDuration("since")

		opts := store.QueryOpts{Limit: limit, Purpose: purpose}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}

		return withEventStore(cmd, func(repo *store.SQLEventRepo) error {
			events, err := repo.QueryLLMEvents(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No model calls recorded.")
				return nil
			}
			display.Fprint(cmd.OutOrStdout(), display.EventList(events))
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and reply of one model call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		return withEventStore(cmd, func(repo *store.SQLEventRepo) error {
			e, err := repo.GetLLMEvent(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}
			display.Fprint(cmd.OutOrStdout(), display.EventDetail(e))
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventStore(cmd, func(repo *store.SQLEventRepo) error {
			byPurpose, err := repo.LLMUsageByPurpose(cmd.Context())
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(byPurpose) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No model calls recorded.")
				return nil
			}
			byModel, err := repo.LLMUsageByModel(cmd.Context())
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Usage by purpose")
			display.Fprint(out, display.UsageByPurpose(byPurpose))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Estimated cost (USD)")
			display.Fprint(out, display.CostByModel(byModel))
			return nil
		})
	},
}

var llmPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete logged model calls older than a given age",
	RunE: func(cmd *cobra.Command, args []string) error {
		age, _ := cmd.Flags().GetDuration("older-than")
		if age <= 0 {
			return fmt.Errorf("--older-than must be positive")
		}

		return withEventStore(cmd, func(repo *store.SQLEventRepo) error {
			n, err := repo.PruneLLMEvents(cmd.Context(), time.Now().Add(-age))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d model calls.\n", n)
			return nil
		})
	},
}

// withEventStore opens the call log for the duration of fn.
func withEventStore(cmd *cobra.Command, fn func(*store.SQLEventRepo) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()
	return fn(s.EventRepo())
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only calls made for this purpose (e.g. quiz-gen)")
	llmListCmd.Flags().Duration("since", 0, "Only calls newer than this (e.g. 24h)")

	llmPruneCmd.Flags().Duration("older-than", 30*24*time.Hour, "Age of the calls to delete")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd, llmPruneCmd)
}
