package recommend

import (
	"strings"
	"testing"

	"github.com/verobrix/verobrix/internal/model"
)

func servileMetrics() model.SovereigntyMetrics {
	return model.SovereigntyMetrics{
		OverallScore:           0.1,
		Level:                  model.LevelServile,
		ImprovementSuggestions: []string{"Suggestion A", "Suggestion B", "Suggestion C", "Suggestion D"},
	}
}

func TestAggregate_HighUrgencyAlwaysImmediate(t *testing.T) {
	aggregator := NewAggregator()

	for _, risk := range []model.RiskLevel{model.RiskLow, model.RiskMedium, model.RiskHigh} {
		bundle := aggregator.Aggregate(
			model.SituationContext{Type: model.SituationGeneral, Urgency: model.UrgencyHigh},
			model.ToneRisk{Risk: risk},
			model.RemedyProposal{},
			model.SovereigntyMetrics{OverallScore: 0.5, Level: model.LevelTransitional},
		)

		if len(bundle.ImmediateActions) == 0 {
			t.Fatalf("High urgency with risk %q produced empty immediate actions", risk)
		}
		foundUrgent := false
		for _, action := range bundle.ImmediateActions {
			if strings.Contains(action, "URGENT") {
				foundUrgent = true
			}
		}
		if !foundUrgent {
			t.Errorf("High urgency with risk %q missing urgency warning: %v", risk, bundle.ImmediateActions)
		}
	}
}

func TestAggregate_NoDuplicatesInAnyList(t *testing.T) {
	// Fee demand at high risk with contradictions and servile language
	// touches every contribution path.
	bundle := NewAggregator().Aggregate(
		model.SituationContext{
			Type:         model.SituationFeeDemand,
			Urgency:      model.UrgencyHigh,
			Jurisdiction: model.Jurisdiction{Primary: "commercial"},
		},
		model.ToneRisk{Tone: "positive", Risk: model.RiskHigh},
		model.RemedyProposal{Contradictions: []model.Contradiction{{Type: "structural"}}},
		servileMetrics(),
	)

	lists := map[string][]string{
		"immediate":     bundle.ImmediateActions,
		"short_term":    bundle.ShortTermActions,
		"long_term":     bundle.LongTermActions,
		"opportunities": bundle.Opportunities,
		"warnings":      bundle.Warnings,
		"improvements":  bundle.SovereigntyImprovements,
	}

	for name, list := range lists {
		seen := map[string]bool{}
		for _, item := range list {
			if seen[item] {
				t.Errorf("Duplicate %q in %s list", item, name)
			}
			seen[item] = true
		}
	}
}

func TestAggregate_SovereigntyPrecedence(t *testing.T) {
	bundle := NewAggregator().Aggregate(
		model.SituationContext{Type: model.SituationGeneral, Urgency: model.UrgencyHigh},
		model.ToneRisk{Risk: model.RiskLow},
		model.RemedyProposal{},
		servileMetrics(),
	)

	// Sovereignty contributes first: the critical language review must
	// precede the urgency block in immediate actions.
	if len(bundle.ImmediateActions) < 2 {
		t.Fatalf("Expected sovereignty and urgency actions, got %v", bundle.ImmediateActions)
	}
	if !strings.Contains(bundle.ImmediateActions[0], "CRITICAL") {
		t.Errorf("Expected sovereignty-driven action first, got %q", bundle.ImmediateActions[0])
	}

	if len(bundle.Warnings) == 0 || !strings.Contains(bundle.Warnings[0], "SOVEREIGNTY WARNING") {
		t.Errorf("Expected sovereignty warning, got %v", bundle.Warnings)
	}
	if len(bundle.SovereigntyImprovements) != 4 {
		t.Errorf("Servile level should carry all suggestions, got %v", bundle.SovereigntyImprovements)
	}
}

func TestAggregate_TransitionalTruncatesSuggestions(t *testing.T) {
	metrics := servileMetrics()
	metrics.OverallScore = 0.5
	metrics.Level = model.LevelTransitional

	bundle := NewAggregator().Aggregate(
		model.SituationContext{Type: model.SituationGeneral, Urgency: model.UrgencyMedium},
		model.ToneRisk{Risk: model.RiskLow},
		model.RemedyProposal{},
		metrics,
	)

	if len(bundle.SovereigntyImprovements) != 3 {
		t.Errorf("Transitional level should carry first 3 suggestions, got %d", len(bundle.SovereigntyImprovements))
	}
	foundOpportunity := false
	for _, o := range bundle.Opportunities {
		if strings.Contains(o, "SOVEREIGNTY OPPORTUNITY") {
			foundOpportunity = true
		}
	}
	if !foundOpportunity {
		t.Errorf("Expected transitional opportunity, got %v", bundle.Opportunities)
	}
}

func TestAggregate_SituationTables(t *testing.T) {
	bundle := NewAggregator().Aggregate(
		model.SituationContext{Type: model.SituationCourtSummons, Urgency: model.UrgencyMedium},
		model.ToneRisk{Risk: model.RiskLow},
		model.RemedyProposal{},
		model.SovereigntyMetrics{OverallScore: 0.8, Level: model.LevelSovereign},
	)

	wantImmediate := "Calculate response deadline"
	found := false
	for _, a := range bundle.ImmediateActions {
		if a == wantImmediate {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected %q in immediate actions, got %v", wantImmediate, bundle.ImmediateActions)
	}
	if len(bundle.LongTermActions) == 0 {
		t.Error("Expected long-term actions for court summons")
	}
}

func TestAggregate_EmptyInputsYieldValidBundle(t *testing.T) {
	bundle := NewAggregator().Aggregate(
		model.SituationContext{Type: model.SituationGeneral, Urgency: model.UrgencyMedium},
		model.ToneRisk{Risk: model.RiskLow},
		model.RemedyProposal{},
		model.SovereigntyMetrics{OverallScore: 0.8, Level: model.LevelSovereign},
	)

	// Lists must be non-nil (render as [] in JSON), even when empty
	if bundle.ImmediateActions == nil || bundle.Warnings == nil {
		t.Error("Bundle lists must be non-nil")
	}
}
