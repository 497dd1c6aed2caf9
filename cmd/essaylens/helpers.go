package main

import (
	"fmt"

	"github.com/hvnguyen/essaylens/internal/analyzer"
	"github.com/hvnguyen/essaylens/internal/config"
	"github.com/hvnguyen/essaylens/internal/grammar"
	"github.com/hvnguyen/essaylens/internal/inference"
	"github.com/hvnguyen/essaylens/internal/inference/openai"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load() > %w", err)
	}
	return cfg, nil
}

// newAnalyzer wires the external clients. A missing OpenAI key is the one
// fatal credential; missing LanguageTool credentials just make every
// grammar call fail open.
func newAnalyzer(cfg *config.Config) (*analyzer.Analyzer, func(), error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, inference.DefaultMaxRetryAttempts)
	grammarClient := grammar.NewClient(cfg.LanguageTool.Username, cfg.LanguageTool.APIKey, cfg.LanguageTool.BaseURL)

	cleanup := func() {
		_ = openaiClient.Close()
		_ = grammarClient.Close()
	}
	return analyzer.New(openaiClient, grammarClient), cleanup, nil
}
