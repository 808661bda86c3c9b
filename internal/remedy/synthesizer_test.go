package remedy

import (
	"strings"
	"testing"

	"github.com/verobrix/verobrix/internal/model"
)

func TestSynthesize_KnownSituations(t *testing.T) {
	synthesizer := NewSynthesizer()

	tests := []struct {
		situation model.SituationType
		wantType  string
	}{
		{model.SituationTrafficStop, "Administrative Notice"},
		{model.SituationFeeDemand, "UCC Administrative Process"},
		{model.SituationCourtSummons, "Jurisdictional Challenge"},
	}

	for _, tt := range tests {
		proposal := synthesizer.Synthesize(SynthesisInput{
			SituationType: tt.situation,
			RiskLevel:     model.RiskLow,
		})
		if proposal.Type != tt.wantType {
			t.Errorf("Synthesize(%q).Type = %q, want %q", tt.situation, proposal.Type, tt.wantType)
		}
		if len(proposal.Strategies) == 0 {
			t.Errorf("Synthesize(%q) returned no strategies", tt.situation)
		}
		if proposal.Confidence < 0 || proposal.Confidence > 1 {
			t.Errorf("Confidence out of [0,1]: %f", proposal.Confidence)
		}
	}
}

func TestSynthesize_UnknownTypeFallsBack(t *testing.T) {
	proposal := NewSynthesizer().Synthesize(SynthesisInput{
		SituationType: model.SituationType("interdimensional_dispute"),
		RiskLevel:     model.RiskLow,
	})

	if proposal.Type != "UCC Administrative Process" {
		t.Errorf("Unknown type should fall back to generic remedy, got %q", proposal.Type)
	}
	if len(proposal.Strategies) == 0 {
		t.Error("Generic remedy should carry baseline strategies")
	}
}

func TestSynthesize_HighRiskEscalates(t *testing.T) {
	proposal := NewSynthesizer().Synthesize(SynthesisInput{
		SituationType: model.SituationFeeDemand,
		RiskLevel:     model.RiskHigh,
	})

	if !strings.Contains(proposal.Description, "Conditional Acceptance") {
		t.Errorf("High risk should escalate to CAFV, got %q", proposal.Description)
	}

	foundCounsel := false
	for _, s := range proposal.Strategies {
		if strings.Contains(s, "counsel") {
			foundCounsel = true
		}
	}
	if !foundCounsel {
		t.Error("High-risk strategies should include seeking counsel")
	}
}

func TestSynthesize_ContradictionsPassThrough(t *testing.T) {
	contradictions := []model.Contradiction{
		{Type: "structural", Description: "Clause 1 conflicts with clause 2", Confidence: 0.7},
		{Type: "rhetorical", Description: "Friendly framing with threats", Confidence: 0.9},
	}

	proposal := NewSynthesizer().Synthesize(SynthesisInput{
		SituationType:  model.SituationFeeDemand,
		RiskLevel:      model.RiskMedium,
		Contradictions: contradictions,
	})

	if len(proposal.Contradictions) != 2 {
		t.Fatalf("Expected 2 contradictions carried through, got %d", len(proposal.Contradictions))
	}
	for i := range contradictions {
		if proposal.Contradictions[i] != contradictions[i] {
			t.Errorf("Contradiction %d was modified: %+v", i, proposal.Contradictions[i])
		}
	}
}

func TestMapEndorsement(t *testing.T) {
	proposal := NewSynthesizer().Synthesize(SynthesisInput{
		SituationType: model.SituationFeeDemand,
		RawText:       "This bill is Accepted For Value and returned.",
	})
	if proposal.Endorsement == nil || proposal.Endorsement.Article != "UCC § 3-409" {
		t.Errorf("Expected Accepted for Value endorsement, got %+v", proposal.Endorsement)
	}

	none := NewSynthesizer().Synthesize(SynthesisInput{
		SituationType: model.SituationFeeDemand,
		RawText:       "An ordinary bill with no special language.",
	})
	if none.Endorsement != nil {
		t.Errorf("Expected no endorsement, got %+v", none.Endorsement)
	}
}

func TestGenerateDocument(t *testing.T) {
	synthesizer := NewSynthesizer()

	doc, err := synthesizer.GenerateDocument("traffic_stop", map[string]string{
		"OFFICER":         "Johnson",
		"AGENCY":          "State Highway Patrol",
		"INDIVIDUAL_NAME": "John Doe",
	})
	if err != nil {
		t.Fatalf("GenerateDocument failed: %v", err)
	}
	if !strings.Contains(doc, "OFFICER Johnson") || !strings.Contains(doc, "State Highway Patrol") {
		t.Errorf("Template variables not substituted: %q", doc)
	}
	if strings.Contains(doc, "{") {
		t.Errorf("Unsubstituted placeholder remains: %q", doc)
	}

	if _, err := synthesizer.GenerateDocument("no_such_template", nil); err == nil {
		t.Error("Expected error for unknown template name")
	}
}

func TestTemplates_SortedAndComplete(t *testing.T) {
	names := NewSynthesizer().Templates()
	if len(names) != 2 {
		t.Fatalf("Expected 2 built-in templates, got %d", len(names))
	}
	if names[0] != "fee_demand" || names[1] != "traffic_stop" {
		t.Errorf("Expected sorted template names, got %v", names)
	}
}
