package analyze

import (
	"fmt"
	"strings"

	"github.com/verobrix/verobrix/internal/model"
)

// ToneAnalyzer scores tone and legal risk. Total and deterministic:
// identical input always yields identical output, and no input errors.
type ToneAnalyzer struct{}

// NewToneAnalyzer creates a tone/risk analyzer
func NewToneAnalyzer() *ToneAnalyzer {
	return &ToneAnalyzer{}
}

var aggressiveTerms = []string{"demand", "must", "required", "failure", "penalty", "immediately", "enforce", "violation", "seize", "prosecute"}

var neutralTerms = []string{"notice", "inform", "regarding", "pursuant", "reference", "attached"}

var positiveTerms = []string{"thank", "appreciate", "pleased", "agree", "resolve", "cooperation"}

// riskTerms are checked in order; the first match at the highest
// severity wins, keeping the summary deterministic.
var riskTerms = []struct {
	term  string
	level model.RiskLevel
}{
	{"warrant", model.RiskHigh},
	{"arrest", model.RiskHigh},
	{"prosecution", model.RiskHigh},
	{"default judgment", model.RiskHigh},
	{"seize", model.RiskHigh},
	{"garnish", model.RiskHigh},
	{"contempt", model.RiskHigh},
	{"penalty", model.RiskMedium},
	{"legal action", model.RiskMedium},
	{"late fee", model.RiskMedium},
	{"suspension", model.RiskMedium},
	{"court", model.RiskMedium},
}

// Analyze classifies tone by keyword counts and risk by the most
// severe risk term present. No signal at all means neutral tone and
// low risk.
func (a *ToneAnalyzer) Analyze(text string) model.ToneRisk {
	lower := strings.ToLower(text)

	aggressive := countTerms(lower, aggressiveTerms)
	neutral := countTerms(lower, neutralTerms)
	positive := countTerms(lower, positiveTerms)

	tone := "neutral"
	switch {
	case aggressive > neutral && aggressive > positive:
		tone = "aggressive"
	case positive > aggressive && positive > neutral:
		tone = "positive"
	}

	risk := model.RiskLow
	trigger := ""
	for _, rt := range riskTerms {
		if !strings.Contains(lower, rt.term) {
			continue
		}
		if rt.level == model.RiskHigh && risk != model.RiskHigh {
			risk = model.RiskHigh
			trigger = rt.term
		} else if rt.level == model.RiskMedium && risk == model.RiskLow {
			risk = model.RiskMedium
			trigger = rt.term
		}
	}

	summary := fmt.Sprintf("Tone is %s; risk assessed as %s", tone, risk)
	if trigger != "" {
		summary += fmt.Sprintf(" (triggered by %q)", trigger)
	}

	return model.ToneRisk{Tone: tone, Risk: risk, Summary: summary}
}

func countTerms(lower string, terms []string) int {
	total := 0
	for _, term := range terms {
		total += strings.Count(lower, term)
	}
	return total
}
