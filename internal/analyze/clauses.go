// Package analyze provides the structural and tone analysis stages:
// clause extraction, contradiction detection, and tone/risk scoring.
package analyze

import "strings"

const (
	minClauseLength = 10
	maxClauseLength = 500
)

// ClauseExtractor splits text into clause-sized units
type ClauseExtractor struct{}

// NewClauseExtractor creates a clause extractor
func NewClauseExtractor() *ClauseExtractor {
	return &ClauseExtractor{}
}

// Extract splits text into ordered clause strings. Sentences are cut
// on terminators and semicolons; fragments outside the length bounds
// are dropped. Empty input yields an empty result.
func (e *ClauseExtractor) Extract(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var clauses []string
	var current strings.Builder

	emit := func() {
		clause := strings.TrimSpace(current.String())
		current.Reset()
		clause = strings.TrimRight(clause, ".!?;")
		if len(clause) >= minClauseLength && len(clause) <= maxClauseLength {
			clauses = append(clauses, clause)
		}
	}

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		switch r {
		case '.', '!', '?', ';':
			// Avoid splitting on abbreviations mid-word
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\t' {
				emit()
			}
		}
	}
	emit()

	return clauses
}
