// Package cli renders analysis reports for the terminal.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hvnguyen/essaylens/internal/analyzer"
)

var (
	labelColor     = color.New(color.Bold)
	finalColor     = color.New(color.FgBlue, color.Bold)
	aiColor        = color.New(color.FgYellow, color.Bold)
	errorColor     = color.New(color.FgRed)
	okColor        = color.New(color.FgGreen)
	degradedColor  = color.New(color.FgYellow)
	headingDivider = strings.Repeat("-", 40)
)

// RenderReport writes the full analysis report. Sections the model skipped
// are omitted rather than shown empty.
func RenderReport(w io.Writer, report analyzer.Report) {
	fmt.Fprintln(w, "Evaluation Results")
	fmt.Fprintln(w, headingDivider)

	if report.LLMError != "" {
		errorColor.Fprintf(w, "LLM Error: %s\n", report.LLMError)
	}

	for _, section := range report.Sections {
		if section.Content == "" {
			continue
		}
		labelColor.Fprintf(w, "%s: ", section.Label)
		fmt.Fprintln(w, section.Content)
	}

	if report.FinalEvaluation != "" {
		labelColor.Fprint(w, "Final Evaluation: ")
		finalColor.Fprintln(w, report.FinalEvaluation)
	}
	if report.AIScore != "" {
		aiColor.Fprintf(w, "AI Detection: %s\n", report.AIScore)
	}

	if report.GrammarChecked {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Grammar Check")
		fmt.Fprintln(w, headingDivider)
		renderGrammar(w, report)
	}
}

func renderGrammar(w io.Writer, report analyzer.Report) {
	if !report.Grammar.Available {
		degradedColor.Fprintln(w, "Grammar check unavailable.")
		return
	}
	if len(report.Grammar.Matches) == 0 {
		okColor.Fprintln(w, "No grammar errors found.")
		return
	}

	fmt.Fprintf(w, "Found %d issues:\n", len(report.Grammar.Matches))
	for _, match := range report.Grammar.Matches {
		suggestions := "None"
		if len(match.Replacements) > 0 {
			suggestions = strings.Join(match.Replacements, ", ")
		}
		errorColor.Fprintf(w, "  %q", match.MatchedText)
		fmt.Fprintf(w, " -> %s\n", suggestions)
	}
}
