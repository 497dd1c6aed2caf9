// Package analyzer orchestrates one essay analysis: the LLM rubric
// assessment followed by the best-effort grammar check.
package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/hvnguyen/essaylens/internal/assessment"
	"github.com/hvnguyen/essaylens/internal/grammar"
	"github.com/hvnguyen/essaylens/internal/highlight"
	"github.com/hvnguyen/essaylens/internal/inference"
)

// ErrEmptyInput is returned when the request or the essay text is blank.
var ErrEmptyInput = errors.New("request and essay text are required")

// Session carries the state of one user submission. It is built per
// analysis and passed in explicitly so the core stays free of ambient
// state.
type Session struct {
	Topic          string              `json:"topic"`
	Request        string              `json:"request"`
	EssayText      string              `json:"essay"`
	CheckGrammar   bool                `json:"checkGrammar"`
	IncludeAIScore bool                `json:"checkAiScore"`
	Language       assessment.Language `json:"language"`
}

// SectionContent is one rendered rubric section.
type SectionContent struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Content string `json:"content"`
}

// Report is the combined result of one analysis. LLMError is set inline
// when the assessment call failed; the rubric sections are then all empty.
type Report struct {
	Sections        []SectionContent `json:"sections"`
	FinalEvaluation string           `json:"finalEvaluation"`
	AIScore         string           `json:"aiScore,omitempty"`
	LLMError        string           `json:"llmError,omitempty"`
	GrammarChecked  bool             `json:"grammarChecked"`
	Grammar         grammar.Report   `json:"grammar"`
	HighlightedHTML string           `json:"highlightedHtml,omitempty"`
}

type Analyzer struct {
	inferenceClient inference.Client
	grammarChecker  grammar.Checker
}

func New(inferenceClient inference.Client, grammarChecker grammar.Checker) *Analyzer {
	return &Analyzer{
		inferenceClient: inferenceClient,
		grammarChecker:  grammarChecker,
	}
}

// Run executes the analysis for one session. The LLM call and the grammar
// check are independent; they run sequentially and their outputs are merged
// only in the report. An LLM failure is reported inline and the run
// continues, so the caller always gets a report for a valid session.
func (a *Analyzer) Run(ctx context.Context, session Session) (Report, error) {
	if strings.TrimSpace(session.Request) == "" || strings.TrimSpace(session.EssayText) == "" {
		return Report{}, ErrEmptyInput
	}

	lang := session.Language
	if lang == "" {
		lang = assessment.LanguageEN
	}

	var rawText string
	response, err := a.inferenceClient.AssessEssay(ctx, inference.AssessEssayRequest{
		Prompt: assessment.PromptSpec{
			Topic:          session.Topic,
			Request:        session.Request,
			EssayText:      session.EssayText,
			IncludeAIScore: session.IncludeAIScore,
			Language:       lang,
		},
	})
	report := Report{}
	if err != nil {
		slog.Default().Warn("essay assessment call failed",
			"topic", session.Topic,
			"error", err,
		)
		report.LLMError = err.Error()
	} else {
		rawText = response.RawText
	}

	parsed := assessment.Parse(rawText)
	if report.LLMError == "" && parsed.IsEmpty() {
		// The call succeeded but the completion matched no section label,
		// so every rubric field will render empty.
		slog.Default().Warn("assessment completion matched no rubric sections",
			"topic", session.Topic,
		)
	}
	for _, def := range assessment.RubricSections() {
		report.Sections = append(report.Sections, SectionContent{
			Key:     def.Key,
			Label:   def.Label(lang),
			Content: parsed.Section(def.Key),
		})
	}
	report.FinalEvaluation = parsed.Section(assessment.SectionFinalEvaluation)
	if session.IncludeAIScore {
		report.AIScore = parsed.Section(assessment.SectionAIPlagiarism)
	}

	if session.CheckGrammar {
		report.GrammarChecked = true
		report.Grammar = a.grammarChecker.CheckBestEffort(ctx, session.EssayText)
		if report.Grammar.Available {
			report.HighlightedHTML = highlight.HTML(session.EssayText, toSpans(report.Grammar.Matches))
		}
	}

	return report, nil
}

func toSpans(matches []grammar.ErrorSpan) []highlight.Span {
	spans := make([]highlight.Span, 0, len(matches))
	for _, match := range matches {
		spans = append(spans, highlight.Span{Offset: match.Offset, Length: match.Length})
	}
	return spans
}
