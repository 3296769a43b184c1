// Package config loads checkpoint settings from defaults, an optional
// config file and CHECKPOINT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/checkpoint/internal/llm"
	"github.com/abhisek/checkpoint/internal/logger"
	"github.com/abhisek/checkpoint/internal/quiz"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// CHECKPOINT_LLM_PROVIDER for llm.provider.
const EnvPrefix = "CHECKPOINT"

// Config is the fully resolved application configuration.
type Config struct {
	LLM    llm.Config
	Quiz   QuizConfig
	Log    logger.Config
	DBPath string

	// File is the config file that was read, or "" when none was found.
	File string
}

// QuizConfig holds quiz creation defaults.
type QuizConfig struct {
	Variant quiz.Variant
}

// Load resolves configuration. When path is empty, checkpoint.{yaml,json,toml}
// is looked up in the working directory and $XDG_CONFIG_HOME/checkpoint; a
// missing file is not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("checkpoint")
		v.AddConfigPath(".")
		if dir := configHome(); dir != "" {
			v.AddConfigPath(filepath.Join(dir, "checkpoint"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	variant, err := quiz.ParseVariant(v.GetString("quiz.variant"))
	if err != nil {
		return nil, fmt.Errorf("quiz.variant: %w", err)
	}

	cfg := &Config{
		LLM: llm.Config{
			Provider: v.GetString("llm.provider"),
			Anthropic: llm.AnthropicConfig{
				APIKey:  v.GetString("llm.anthropic.api_key"),
				Model:   v.GetString("llm.anthropic.model"),
				BaseURL: v.GetString("llm.anthropic.base_url"),
			},
			OpenAI: llm.OpenAIConfig{
				APIKey:  v.GetString("llm.openai.api_key"),
				Model:   v.GetString("llm.openai.model"),
				BaseURL: v.GetString("llm.openai.base_url"),
			},
			Gemini: llm.GeminiConfig{
				APIKey:  v.GetString("llm.gemini.api_key"),
				Model:   v.GetString("llm.gemini.model"),
				BaseURL: v.GetString("llm.gemini.base_url"),
			},
			OpenRouter: llm.OpenRouterConfig{
				APIKey:  v.GetString("llm.openrouter.api_key"),
				Model:   v.GetString("llm.openrouter.model"),
				BaseURL: v.GetString("llm.openrouter.base_url"),
			},
			Ollama: llm.OllamaConfig{
				ServerURL: v.GetString("llm.ollama.server_url"),
				Model:     v.GetString("llm.ollama.model"),
			},
			Retry: llm.RetryConfig{
				MaxAttempts: v.GetInt("llm.retry.max_attempts"),
				InitialWait: v.GetDuration("llm.retry.initial_wait"),
				MaxWait:     v.GetDuration("llm.retry.max_wait"),
				Multiplier:  v.GetFloat64("llm.retry.multiplier"),
			},
			MaxTokens:   v.GetInt("llm.max_tokens"),
			Temperature: v.GetFloat64("llm.temperature"),
			Timeout:     v.GetDuration("llm.timeout"),
		},
		Quiz: QuizConfig{Variant: variant},
		Log: logger.Config{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		DBPath: v.GetString("db.path"),
		File:   v.ConfigFileUsed(),
	}

	if cfg.LLM.Provider == "" {
		// No provider chosen: take the first vendor key found in the
		// environment, else the default provider.
		discovered, ok := llm.DiscoverConfig(cfg.LLM)
		if ok {
			cfg.LLM = discovered
		} else {
			cfg.LLM.Provider = llm.DefaultConfig().Provider
		}
	} else if !cfg.LLM.HasCredentials() {
		cfg.LLM.FillVendorKey()
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.anthropic.base_url", "")
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.gemini.base_url", "")
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.ollama.server_url", d.Ollama.ServerURL)
	v.SetDefault("llm.ollama.model", d.Ollama.Model)
	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.Retry.Multiplier)
	v.SetDefault("llm.max_tokens", d.MaxTokens)
	v.SetDefault("llm.temperature", d.Temperature)
	v.SetDefault("llm.timeout", d.Timeout)

	v.SetDefault("quiz.variant", string(quiz.VariantDefault))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", "")
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}
	return ""
}
