package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hvnguyen/essaylens/internal/analyzer"
	"github.com/hvnguyen/essaylens/internal/assessment"
	"github.com/hvnguyen/essaylens/internal/cli"
	"github.com/hvnguyen/essaylens/internal/samples"
)

type LanguageFlag assessment.Language

// Set implements pflag.Value.
func (l *LanguageFlag) Set(v string) error {
	switch v {
	case string(assessment.LanguageEN):
		*l = LanguageFlag(assessment.LanguageEN)
	case string(assessment.LanguageVI):
		*l = LanguageFlag(assessment.LanguageVI)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, assessment.LanguageEN, assessment.LanguageVI)
	}
	return nil
}

// String implements pflag.Value.
func (l *LanguageFlag) String() string {
	if l == nil {
		return ""
	}
	return string(*l)
}

// Type implements pflag.Value.
func (l *LanguageFlag) Type() string {
	return "LanguageFlag"
}

var (
	_ pflag.Value = (*LanguageFlag)(nil)
)

func newAssessCommand() *cobra.Command {
	var (
		topic        string
		request      string
		essayFile    string
		useSample    bool
		checkGrammar bool
		checkAIScore bool
	)
	lang := LanguageFlag(assessment.LanguageEN)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess an essay against a topic and request",
		RunE: func(cmd *cobra.Command, args []string) error {
			essayText, err := readEssay(cmd.InOrStdin(), essayFile, useSample)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, cleanup, err := newAnalyzer(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := a.Run(cmd.Context(), analyzer.Session{
				Topic:          topic,
				Request:        request,
				EssayText:      essayText,
				CheckGrammar:   checkGrammar,
				IncludeAIScore: checkAIScore,
				Language:       assessment.Language(lang),
			})
			if err != nil {
				return fmt.Errorf("analyzer.Run() > %w", err)
			}

			cli.RenderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Essay topic")
	cmd.Flags().StringVar(&request, "request", "", "Essay request (the prompt the essay answers)")
	cmd.Flags().StringVar(&essayFile, "essay-file", "", "Read the essay from a file instead of stdin")
	cmd.Flags().BoolVar(&useSample, "sample", false, "Use the built-in sample essay")
	cmd.Flags().BoolVar(&checkGrammar, "grammar", false, "Run the grammar check")
	cmd.Flags().BoolVar(&checkAIScore, "ai-score", false, "Ask for an AI plagiarism estimate")
	cmd.Flags().Var(&lang, "lang", "Output language (en or vi)")

	return cmd
}

func readEssay(stdin io.Reader, essayFile string, useSample bool) (string, error) {
	if useSample {
		bank, err := samples.Load()
		if err != nil {
			return "", fmt.Errorf("samples.Load() > %w", err)
		}
		return bank.Essay(), nil
	}

	if essayFile != "" {
		contents, err := os.ReadFile(essayFile)
		if err != nil {
			return "", fmt.Errorf("os.ReadFile(%s) > %w", essayFile, err)
		}
		return string(contents), nil
	}

	contents, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("io.ReadAll(stdin) > %w", err)
	}
	return string(contents), nil
}
