// Package sovereignty scores language on the servile-to-sovereign
// axis using static indicator term sets and an occurrence ratio.
package sovereignty

import (
	"sort"
	"strings"

	"github.com/verobrix/verobrix/internal/model"
)

// The two term sets are disjoint and fixed. Counting is by
// case-insensitive substring occurrence, so "rights" counts toward
// "right" and "personal" counts toward "person".
var sovereignTerms = []string{"lawful", "right", "remedy", "without prejudice", "private", "notice", "demand"}

var servileTerms = []string{"request", "please", "submit", "person", "employee", "permission", "appeal"}

// improvementSuggestions is the static ordered list surfaced whenever
// the classification is not Sovereign.
var improvementSuggestions = []string{
	"Consider replacing servile language (e.g., 'request') with more assertive, sovereign terms (e.g., 'demand', 'notice').",
	"Clearly state reservation of rights.",
	"Frame the matter as private and identify the lawful basis for your position.",
	"Avoid asking for permission where none is required; give notice instead.",
}

// Sub-score weighting of the overall score, following the original
// language/remedy/autonomy split.
const (
	languageWeight = 0.8
	remedyWeight   = 0.1
	autonomyWeight = 0.1
)

// Scorer computes SovereigntyMetrics for texts and decisions
type Scorer struct{}

// NewScorer creates a sovereignty scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// ScoreText scores a text. The overall score is
// sovereign/(sovereign+servile) occurrence counts, or exactly 0.5 when
// neither set matches at all.
func (s *Scorer) ScoreText(text string) model.SovereigntyMetrics {
	lower := strings.ToLower(text)

	sovereignCount, sovereignMatched := countOccurrences(lower, sovereignTerms)
	servileCount, servileMatched := countOccurrences(lower, servileTerms)

	score := 0.5 // neutral when no indicators at all
	if total := sovereignCount + servileCount; total > 0 {
		score = float64(sovereignCount) / float64(total)
	}

	level := classify(score)

	metrics := model.SovereigntyMetrics{
		OverallScore:        score,
		LanguageScore:       score * languageWeight,
		RemedyScore:         score * remedyWeight,
		AutonomyScore:       score * autonomyWeight,
		Level:               level,
		SovereignIndicators: sovereignMatched,
		ServileFlags:        servileMatched,
	}

	if level != model.LevelSovereign {
		metrics.ImprovementSuggestions = append([]string(nil), improvementSuggestions...)
	}

	return metrics
}

// ScoreDecision scores a synthesized decision by concatenating its
// field values (in sorted key order, for determinism) and scoring the
// combined text exactly like ScoreText.
func (s *Scorer) ScoreDecision(fields map[string]string) model.SovereigntyMetrics {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fields[k])
	}

	return s.ScoreText(b.String())
}

// classify maps a score to a level. Boundaries: a score above 0.7 is
// Sovereign, above 0.4 up to and including 0.7 is Transitional, and
// 0.4 or below is Servile.
func classify(score float64) model.SovereigntyLevel {
	switch {
	case score > 0.7:
		return model.LevelSovereign
	case score > 0.4:
		return model.LevelTransitional
	default:
		return model.LevelServile
	}
}

// countOccurrences totals substring occurrences of each term and
// collects the terms that matched at least once, in set order.
func countOccurrences(lower string, terms []string) (int, []string) {
	total := 0
	var matched []string
	for _, term := range terms {
		if n := strings.Count(lower, term); n > 0 {
			total += n
			matched = append(matched, term)
		}
	}
	return total, matched
}
