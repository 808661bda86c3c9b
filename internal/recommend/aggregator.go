// Package recommend merges the signals of every pipeline stage into
// prioritized, deduplicated action lists.
package recommend

import (
	"github.com/verobrix/verobrix/internal/model"
)

// Aggregator builds the recommendation bundle. Contribution order is
// fixed: sovereignty, urgency, risk, contradictions, situation-type
// tables, then tone/jurisdiction opportunities. Within each list,
// duplicates are dropped and the first contributor keeps its position.
type Aggregator struct{}

// NewAggregator creates a recommendation aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// situationActions holds per-situation action tables
var situationActions = map[model.SituationType]struct {
	immediate []string
	shortTerm []string
	longTerm  []string
}{
	model.SituationTrafficStop: {
		immediate: []string{"Document all details of the encounter", "Preserve any evidence"},
		shortTerm: []string{"Review citation for errors", "Research applicable traffic laws"},
		longTerm:  []string{"Consider challenging jurisdiction", "File administrative remedy if applicable"},
	},
	model.SituationFeeDemand: {
		immediate: []string{"Do not pay without challenging authority", "Request fee schedule"},
		shortTerm: []string{"Challenge lawful authority for fee", "Demand due process hearing"},
		longTerm:  []string{"File administrative appeal", "Consider legal action if rights violated"},
	},
	model.SituationCourtSummons: {
		immediate: []string{"Calculate response deadline", "Preserve all rights"},
		shortTerm: []string{"File appropriate response", "Challenge jurisdiction if applicable"},
		longTerm:  []string{"Prepare defense strategy", "Consider counterclaims if applicable"},
	},
}

// Aggregate merges all stage outputs into one bundle
func (a *Aggregator) Aggregate(
	situation model.SituationContext,
	toneRisk model.ToneRisk,
	remedy model.RemedyProposal,
	metrics model.SovereigntyMetrics,
) model.RecommendationBundle {
	b := &builder{}

	// 1. Sovereignty-driven warnings and improvements
	switch metrics.Level {
	case model.LevelServile:
		b.warn("SOVEREIGNTY WARNING: Language contains servile patterns")
		b.improve(metrics.ImprovementSuggestions...)
	case model.LevelTransitional:
		b.opportunity("SOVEREIGNTY OPPORTUNITY: Language shows transitional sovereignty - can be improved")
		b.improve(firstN(metrics.ImprovementSuggestions, 3)...)
	default:
		b.opportunity("SOVEREIGNTY STRENGTH: Language demonstrates sovereign principles")
	}
	if metrics.OverallScore < 0.4 {
		b.immediate("CRITICAL: Review language for servile patterns and replace with sovereign alternatives")
	}

	// 2. Urgency-driven immediate actions
	if situation.Urgency == model.UrgencyHigh {
		b.immediate(
			"URGENT: Time-sensitive situation detected",
			"Review all deadlines and timelines immediately",
			"Consider emergency legal consultation",
		)
	}

	// 3. Risk-driven actions and warnings
	if toneRisk.Risk == model.RiskHigh {
		b.immediate("HIGH RISK: Seek immediate legal counsel")
		b.warn("Situation contains high-risk legal elements")
	}

	// 4. Contradiction-driven short-term actions
	if len(remedy.Contradictions) > 0 {
		b.shortTerm("Challenge contradictory provisions in documents")
	}

	// 5. Situation-type action tables
	if actions, ok := situationActions[situation.Type]; ok {
		b.immediate(actions.immediate...)
		b.shortTerm(actions.shortTerm...)
		b.longTerm(actions.longTerm...)
	}

	// 6. Tone and jurisdiction opportunities
	if toneRisk.Tone == "positive" {
		b.opportunity("Document contains favorable language - preserve these terms")
	}
	if situation.Jurisdiction.Primary == "commercial" {
		b.opportunity("Commercial jurisdiction may provide UCC protections")
	}

	return b.bundle()
}

// builder accumulates bundle entries with per-list dedupe
type builder struct {
	immediateList, shortList, longList, oppList, warnList, improveList dedupeList
}

func (b *builder) immediate(items ...string)   { b.immediateList.add(items) }
func (b *builder) shortTerm(items ...string)   { b.shortList.add(items) }
func (b *builder) longTerm(items ...string)    { b.longList.add(items) }
func (b *builder) opportunity(items ...string) { b.oppList.add(items) }
func (b *builder) warn(items ...string)        { b.warnList.add(items) }
func (b *builder) improve(items ...string)     { b.improveList.add(items) }

func (b *builder) bundle() model.RecommendationBundle {
	return model.RecommendationBundle{
		ImmediateActions:        b.immediateList.items(),
		ShortTermActions:        b.shortList.items(),
		LongTermActions:         b.longList.items(),
		Opportunities:           b.oppList.items(),
		Warnings:                b.warnList.items(),
		SovereigntyImprovements: b.improveList.items(),
	}
}

// dedupeList keeps insertion order and drops exact duplicates
type dedupeList struct {
	seen map[string]bool
	list []string
}

func (d *dedupeList) add(items []string) {
	if d.seen == nil {
		d.seen = make(map[string]bool)
	}
	for _, item := range items {
		if item == "" || d.seen[item] {
			continue
		}
		d.seen[item] = true
		d.list = append(d.list, item)
	}
}

func (d *dedupeList) items() []string {
	if d.list == nil {
		return []string{}
	}
	return d.list
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
