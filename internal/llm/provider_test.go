package llm

import (
	"strings"
	"testing"

	"github.com/verobrix/verobrix/internal/model"
)

func TestNewProviderDisabled(t *testing.T) {
	p, err := NewProvider(Config{Provider: ""})
	if err != nil {
		t.Fatalf("empty provider should be disabled, got error: %v", err)
	}
	if p != nil {
		t.Error("expected nil provider when disabled")
	}
}

func TestNewProviderUnknown(t *testing.T) {
	_, err := NewProvider(Config{Provider: "mystery"})
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewProviderOllamaUsesOpenAIClient(t *testing.T) {
	p, err := NewProvider(Config{Provider: "ollama", BaseURL: "http://localhost:11434/v1"})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestNewOpenAIProviderRequiresKeyOrURL(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Error("expected error without API key or base URL")
	}
	if _, err := NewOpenAIProvider(Config{APIKey: "sk-test"}); err != nil {
		t.Errorf("API key alone should suffice: %v", err)
	}
	if _, err := NewOpenAIProvider(Config{BaseURL: "http://localhost:11434/v1"}); err != nil {
		t.Errorf("base URL alone should suffice: %v", err)
	}
}

func TestBuildPromptIncludesFindings(t *testing.T) {
	result := model.AnalysisResult{
		Situation: model.SituationContext{
			Type:         model.SituationTrafficStop,
			Urgency:      model.UrgencyHigh,
			Jurisdiction: model.Jurisdiction{Primary: "commercial"},
		},
		Sovereignty: model.SovereigntyAnalysis{
			Input: model.SovereigntyMetrics{OverallScore: 0.25, Level: model.LevelServile},
		},
		Legal: model.LegalAnalysis{
			ToneRisk: model.ToneRisk{Risk: model.RiskHigh},
			Contradictions: []model.Contradiction{
				{Type: "modality_conflict", Description: "opposing obligations"},
			},
		},
		Remedy: model.RemedyProposal{Type: "UCC 1-207 Reservation of Rights", Confidence: 0.85},
		Recommendations: model.RecommendationBundle{
			ImmediateActions: []string{"Remain calm and polite"},
		},
		CorpusSearch: &model.AuthorityReport{
			Recommended: []model.RecommendedAuthority{
				{Authority: "Hale v. Henkel", Citation: "201 U.S. 43 (1906)"},
			},
		},
	}

	prompt := BuildPrompt(result)

	for _, want := range []string{
		"traffic_stop",
		"0.25",
		"Contradictions found: 1",
		"UCC 1-207 Reservation of Rights",
		"Remain calm and polite",
		"Hale v. Henkel",
		"Do not re-score",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptOmitsEmptySections(t *testing.T) {
	prompt := BuildPrompt(model.AnalysisResult{})
	if strings.Contains(prompt, "Immediate actions") {
		t.Error("empty recommendations should be omitted")
	}
	if strings.Contains(prompt, "Supporting authorities") {
		t.Error("absent corpus search should be omitted")
	}
}
