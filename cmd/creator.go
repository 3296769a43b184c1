package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/checkpoint/internal/llm"
	"github.com/abhisek/checkpoint/internal/logger"
	"github.com/abhisek/checkpoint/internal/quiz"
	"github.com/abhisek/checkpoint/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// buildCreator wires the configured provider stack into a quiz Creator.
// Model calls are recorded in the request log when the store opens; the
// returned func closes it.
func buildCreator(ctx context.Context, cmd *cobra.Command) (*quiz.Creator, func(), error) {
	var eventRepo store.EventRepo
	closeFn := func() {}

	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		var st *store.Store
		st, err = store.Open(dbPath)
		if err == nil {
			eventRepo = st.EventRepo()
			closeFn = func() { st.Close() }
		}
	}
	if err != nil {
		logger.Get().Warn("LLM request log unavailable", zap.Error(err))
	}

	completer, err := llm.NewCompleterFromConfig(ctx, appConfig.LLM, eventRepo)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	logger.Get().Debug("provider ready",
		zap.String("provider", appConfig.LLM.Provider),
		zap.String("model", completer.ModelID()))

	return quiz.New(completer, quiz.DefaultConfig()), closeFn, nil
}

// readContent reads the passage from path, or stdin when path is "-".
func readContent(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader
	switch path {
	case "":
		return "", nil
	case "-":
		r = cmd.InOrStdin()
	default:
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open content: %w", err)
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	return string(b), nil
}

// resolveVariant prefers the --variant flag over quiz.variant from config.
func resolveVariant(cmd *cobra.Command) (quiz.Variant, error) {
	name, _ := cmd.Flags().GetString("variant")
	if name == "" {
		return appConfig.Quiz.Variant, nil
	}
	return quiz.ParseVariant(name)
}
