// Package llm generates an optional plain-language restatement of a
// finished analysis. It runs after all scoring and never feeds back
// into scores, remedies, or recommendations.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/verobrix/verobrix/internal/model"
)

// Provider defines the interface for summary backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a plain-language summary of the result
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest contains the input for summarization
type SummarizeRequest struct {
	// Result is the completed analysis to restate
	Result model.AnalysisResult

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the summary output
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds provider configuration
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted endpoints
	APIKey string

	// BaseURL for custom endpoints (e.g. a local Ollama server's
	// OpenAI-compatible API)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// ConfigFromModel converts the application config section
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		MaxTokens: c.MaxTokens,
	}
}

// NewProvider creates a provider from configuration. An empty
// provider name means summaries are disabled and returns nil, nil.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai", "ollama":
		// Ollama is reached through its OpenAI-compatible endpoint,
		// so both names share one client.
		return NewOpenAIProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown llm provider: %s (supported: openai, ollama)", config.Provider)
	}
}

// BuildPrompt constructs the default summarization prompt. The
// deterministic findings are authoritative; the model restates, it
// does not re-judge.
func BuildPrompt(result model.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(`You are restating a completed legal-situation analysis in plain language.

RULES:
1. The findings below are final. Do not re-score, re-classify, or disagree with them.
2. Do not invent case law, statutes, or facts not listed below.
3. Do not give legal advice beyond restating the recommendations.
4. Keep it under four short paragraphs.

Findings:
`)

	fmt.Fprintf(&b, "- Situation: %s (urgency %s, jurisdiction %s)\n",
		result.Situation.Type, result.Situation.Urgency, result.Situation.Jurisdiction.Primary)
	fmt.Fprintf(&b, "- Sovereignty score: %.2f (%s)\n",
		result.Sovereignty.Input.OverallScore, result.Sovereignty.Input.Level)
	fmt.Fprintf(&b, "- Tone risk: %s\n", result.Legal.ToneRisk.Risk)
	fmt.Fprintf(&b, "- Contradictions found: %d\n", len(result.Legal.Contradictions))
	fmt.Fprintf(&b, "- Proposed remedy: %s (confidence %.2f)\n",
		result.Remedy.Type, result.Remedy.Confidence)

	if len(result.Recommendations.ImmediateActions) > 0 {
		b.WriteString("- Immediate actions:\n")
		for _, a := range result.Recommendations.ImmediateActions {
			fmt.Fprintf(&b, "  - %s\n", a)
		}
	}
	if result.CorpusSearch != nil && len(result.CorpusSearch.Recommended) > 0 {
		b.WriteString("- Supporting authorities:\n")
		for _, rec := range result.CorpusSearch.Recommended {
			fmt.Fprintf(&b, "  - %s (%s)\n", rec.Authority, rec.Citation)
		}
	}

	b.WriteString("\nRestate these findings for a layperson.\n")
	return b.String()
}
