package inference

import (
	"context"

	"github.com/hvnguyen/essaylens/internal/assessment"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	AssessEssay(ctx context.Context, params AssessEssayRequest) (AssessEssayResponse, error)
}

// AssessEssayRequest holds the prompt inputs for one assessment call.
type AssessEssayRequest struct {
	Prompt assessment.PromptSpec
}

// AssessEssayResponse carries the raw completion. There is no structured
// output contract with the backend; downstream parsing is best-effort.
type AssessEssayResponse struct {
	RawText string
	Usage   Usage
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

const (
	DefaultMaxRetryAttempts = 3
)
