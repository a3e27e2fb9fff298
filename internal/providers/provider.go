package providers

import (
	"context"
)

// GenConfig mirrors the Gemini generationConfig block.
type GenConfig struct {
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

// ChatConfig favors fluent prose, QuizConfig favors deterministic,
// well-formed JSON output.
func ChatConfig() GenConfig {
	return GenConfig{Temperature: 0.7, TopP: 0.95, TopK: 40, MaxOutputTokens: 4096}
}

func QuizConfig() GenConfig {
	return GenConfig{Temperature: 0.2, TopP: 0.95, TopK: 40, MaxOutputTokens: 8192}
}

// CompletionRequest carries everything one provider call needs. Built per
// call, never retained.
type CompletionRequest struct {
	APIKey string
	Model  string
	Prompt string
	Config GenConfig

	// Safety requests the relaxed code-generation safety thresholds.
	Safety bool
}

type SourceName string

const SourceGemini SourceName = "GEMINI"

// Client is the single seam to the upstream model provider. Complete
// returns the raw completion text; all failures are either
// ErrMissingAPIKey or a *ProviderError.
type Client interface {
	Name() SourceName
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
