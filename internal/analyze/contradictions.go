package analyze

import (
	"fmt"
	"strings"

	"github.com/verobrix/verobrix/internal/model"
)

// ContradictionDetector finds inconsistencies between clauses. The
// interface exists so a stronger detector can replace the shipped
// heuristic without touching the orchestrator.
type ContradictionDetector interface {
	Detect(clauses []string) []model.Contradiction
}

// HeuristicDetector is the default detector. It flags opposing
// modalities between clauses sharing a subject term, and rhetorical
// mismatches where conciliatory framing carries threat language.
type HeuristicDetector struct{}

// NewHeuristicDetector creates the default contradiction detector
func NewHeuristicDetector() *HeuristicDetector {
	return &HeuristicDetector{}
}

// modalityPairs lists mutually exclusive obligations
var modalityPairs = [][2]string{
	{"shall", "shall not"},
	{"must", "must not"},
	{"will", "will not"},
	{"is required", "is not required"},
	{"agrees to", "refuses to"},
}

var friendlyTerms = []string{"friendly reminder", "courtesy", "kindly", "thank you", "at your convenience"}

var threatTerms = []string{"legal action", "penalty", "prosecution", "seize", "garnish", "warrant", "failure to comply", "enforcement"}

// Detect scans clause pairs for structural contradictions and the
// whole clause set for rhetorical ones. Empty input yields empty
// output, never an error.
func (d *HeuristicDetector) Detect(clauses []string) []model.Contradiction {
	var found []model.Contradiction

	lower := make([]string, len(clauses))
	for i, c := range clauses {
		lower[i] = strings.ToLower(c)
	}

	for i := 0; i < len(lower); i++ {
		for j := i + 1; j < len(lower); j++ {
			for _, pair := range modalityPairs {
				if opposes(lower[i], lower[j], pair[0], pair[1]) && sharesSubject(lower[i], lower[j]) {
					found = append(found, model.Contradiction{
						Type:        "structural",
						Description: fmt.Sprintf("Clause %d (%q) conflicts with clause %d (%q)", i+1, pair[0], j+1, pair[1]),
						Confidence:  0.7,
					})
				}
			}
		}
	}

	if mismatch := rhetoricalMismatch(lower); mismatch != nil {
		found = append(found, *mismatch)
	}

	return found
}

// opposes reports whether one clause carries the positive modality and
// the other its negation. A clause containing the negated form also
// contains the positive substring, so the negation is checked first.
func opposes(a, b, positive, negative string) bool {
	aNeg := strings.Contains(a, negative)
	bNeg := strings.Contains(b, negative)
	aPos := !aNeg && strings.Contains(a, positive)
	bPos := !bNeg && strings.Contains(b, positive)
	return (aPos && bNeg) || (aNeg && bPos)
}

// sharesSubject is a cheap proxy for two clauses being about the same
// thing: they share at least two content words of length > 4.
func sharesSubject(a, b string) bool {
	wordsA := map[string]bool{}
	for _, w := range strings.Fields(a) {
		if len(w) > 4 {
			wordsA[w] = true
		}
	}
	shared := 0
	for _, w := range strings.Fields(b) {
		if len(w) > 4 && wordsA[w] {
			shared++
			if shared >= 2 {
				return true
			}
		}
	}
	return false
}

func rhetoricalMismatch(lower []string) *model.Contradiction {
	joined := strings.Join(lower, " ")

	friendly := ""
	for _, term := range friendlyTerms {
		if strings.Contains(joined, term) {
			friendly = term
			break
		}
	}
	if friendly == "" {
		return nil
	}

	for _, term := range threatTerms {
		if strings.Contains(joined, term) {
			return &model.Contradiction{
				Type:        "rhetorical",
				Description: fmt.Sprintf("Document frames itself as %q but uses threatening language (%q)", friendly, term),
				Confidence:  0.9,
			}
		}
	}
	return nil
}
