package model

import "time"

// AnalysisInput is the raw material for one pipeline run
type AnalysisInput struct {
	RawText string       `json:"raw_text"`
	Hint    *ContextHint `json:"context,omitempty"`

	// Query, when set, requests a corpus authority search as part of
	// the run. Empty means no search.
	Query string `json:"query,omitempty"`
}

// SovereigntyAnalysis pairs the input score with the remedy score
type SovereigntyAnalysis struct {
	Input  SovereigntyMetrics `json:"input_sovereignty"`
	Remedy SovereigntyMetrics `json:"remedy_sovereignty"`
}

// AnalysisResult is the top-level aggregate for one session. It is
// assembled once by the orchestrator and immutable afterward.
type AnalysisResult struct {
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"system_version"`

	Input AnalysisInput `json:"input"`

	Situation   SituationContext    `json:"situation_analysis"`
	Legal       LegalAnalysis       `json:"legal_analysis"`
	Sovereignty SovereigntyAnalysis `json:"sovereignty_analysis"`

	Remedy          RemedyProposal       `json:"remedy"`
	Recommendations RecommendationBundle `json:"recommendations"`

	CorpusSearch *AuthorityReport `json:"corpus_search,omitempty"`

	// LLM is an optional plain-language restatement generated after
	// scoring. It never affects any score or recommendation.
	LLM *LLMSummary `json:"llm,omitempty"`
}

// LLMSummary is the optional model-generated narrative
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
