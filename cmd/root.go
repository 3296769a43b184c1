package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/checkpoint/internal/config"
	"github.com/abhisek/checkpoint/internal/llm"
	"github.com/abhisek/checkpoint/internal/logger"
	"github.com/abhisek/checkpoint/internal/store"
	"github.com/spf13/cobra"
)

// appConfig is loaded once per invocation by the root PersistentPreRunE.
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:           "checkpoint",
	Short:         "Turn a passage into a multiple-choice comprehension check",
	Long:          "Checkpoint asks a language model for one four-option question about a passage, validates it and lets you answer it.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTake(cmd, "")
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	_ = logger.Sync()
	return err
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./checkpoint.yaml or $XDG_CONFIG_HOME/checkpoint/)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CHECKPOINT_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("provider", "", "Model backend: "+strings.Join(llm.Backends(), ", "))

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and initializes logging.
func setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.LLM.Provider = p
		cfg.LLM.FillVendorKey()
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if err := logger.Initialize(cfg.Log); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	appConfig = cfg
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db.path from config, then CHECKPOINT_DB or the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if appConfig != nil && appConfig.DBPath != "" {
		return appConfig.DBPath, store.EnsureDir(appConfig.DBPath)
	}
	return store.DefaultDBPath()
}
