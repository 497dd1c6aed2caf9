// Package grammar wraps the LanguageTool check API. Grammar checking is
// best-effort: callers that cannot tolerate failures use CheckBestEffort,
// which degrades to an unavailable report instead of an error.
package grammar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resty.dev/v3"
)

//go:generate mockgen -source=client.go -destination=../mocks/grammar/mock_checker.go -package=mock_grammar

// ErrorSpan is one grammar finding located by byte offset within the
// checked text. Offset+Length never exceeds the length of that text.
type ErrorSpan struct {
	Offset       int      `json:"offset"`
	Length       int      `json:"length"`
	Replacements []string `json:"replacements"`
	MatchedText  string   `json:"matchedText"`
}

// Report distinguishes a completed check from an unavailable one, so callers
// can tell "confirmed clean" apart from "check failed" instead of both
// collapsing into an empty list.
type Report struct {
	Available bool        `json:"available"`
	Matches   []ErrorSpan `json:"matches"`
}

// Checker is the interface the analyzer consumes.
type Checker interface {
	CheckBestEffort(ctx context.Context, text string) Report
}

const (
	defaultBaseURL = "https://api.languagetoolplus.com"
	checkTimeout   = 30 * time.Second

	// Suggestions beyond the first few are rarely useful; the backend
	// returns them best-first.
	maxReplacements = 3
)

type Client struct {
	httpClient *resty.Client
	username   string
	apiKey     string
}

func NewClient(username, apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(checkTimeout)

	return &Client{
		httpClient: client,
		username:   username,
		apiKey:     apiKey,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type checkResponse struct {
	Matches []checkMatch `json:"matches"`
}

type checkMatch struct {
	Offset       int                `json:"offset"`
	Length       int                `json:"length"`
	Replacements []checkReplacement `json:"replacements"`
}

type checkReplacement struct {
	Value string `json:"value"`
}

// Check posts text to the check endpoint and maps the matches into error
// spans. It errors on transport failures, non-2xx responses, and malformed
// payloads; use CheckBestEffort to fail open instead.
func (client *Client) Check(ctx context.Context, text string) ([]ErrorSpan, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"text":     text,
			"language": "en-US",
			"username": client.username,
			"apiKey":   client.apiKey,
			"level":    "picky",
		}).
		SetResult(&checkResponse{}).
		Post("/v2/check")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody, ok := response.Result().(*checkResponse)
	if !ok || responseBody == nil {
		return nil, fmt.Errorf("empty response body: %s", response.String())
	}

	// LanguageTool counts offset and length in characters. Spans are
	// byte-denominated from here on, so convert before bounds-checking;
	// otherwise any multibyte rune before a match shifts every span after it.
	runeToByte := runeIndexes(text)

	spans := make([]ErrorSpan, 0, len(responseBody.Matches))
	for _, match := range responseBody.Matches {
		endRune := match.Offset + match.Length
		if match.Offset < 0 || match.Length <= 0 || endRune > len(runeToByte)-1 {
			continue
		}
		start := runeToByte[match.Offset]
		end := runeToByte[endRune]

		replacements := make([]string, 0, maxReplacements)
		for _, replacement := range match.Replacements {
			if len(replacements) == maxReplacements {
				break
			}
			replacements = append(replacements, replacement.Value)
		}

		spans = append(spans, ErrorSpan{
			Offset:       start,
			Length:       end - start,
			Replacements: replacements,
			MatchedText:  text[start:end],
		})
	}
	return spans, nil
}

// runeIndexes maps each rune index of text to its byte index, with one extra
// entry for the end of the text.
func runeIndexes(text string) []int {
	indexes := make([]int, 0, len(text)+1)
	for i := range text {
		indexes = append(indexes, i)
	}
	return append(indexes, len(text))
}

// CheckBestEffort runs Check and maps any failure to an unavailable report.
// A network outage therefore degrades to "check unavailable" rather than
// blocking the rest of the analysis.
func (client *Client) CheckBestEffort(ctx context.Context, text string) Report {
	spans, err := client.Check(ctx, text)
	if err != nil {
		slog.Default().Warn("grammar check failed, continuing without it",
			"error", err,
		)
		return Report{}
	}
	return Report{Available: true, Matches: spans}
}
