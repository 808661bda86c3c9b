// Package interpret classifies raw text into a structured legal
// situation: type, urgency, jurisdiction, and named entities.
package interpret

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/verobrix/verobrix/internal/model"
)

// Interpreter derives a SituationContext from raw text. It is a pure
// function of its inputs and the static keyword tables below; it never
// fails, returning the default context for empty or unmatched input.
type Interpreter struct{}

// NewInterpreter creates a situation interpreter
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// situationKeywords maps situation types to their trigger terms,
// checked in a fixed order so classification stays deterministic.
var situationOrder = []model.SituationType{
	model.SituationTrafficStop,
	model.SituationCourtSummons,
	model.SituationFeeDemand,
}

var situationKeywords = map[model.SituationType][]string{
	model.SituationTrafficStop:  {"traffic stop", "pulled over", "officer", "citation", "license and registration", "patrol"},
	model.SituationCourtSummons: {"summons", "court date", "appear before", "hearing", "subpoena", "plaintiff", "defendant"},
	model.SituationFeeDemand:    {"fee", "payment due", "amount due", "invoice", "bill", "demand for payment", "balance owed"},
}

var highUrgencyKeywords = []string{"immediately", "urgent", "deadline", "final notice", "within 10 days", "within 30 days", "warrant", "arrest", "default judgment"}

var lowUrgencyKeywords = []string{"informational", "no action required", "for your records", "courtesy"}

var jurisdictionKeywords = []struct {
	term    string
	primary string
}{
	{"ucc", "commercial"},
	{"commercial", "commercial"},
	{"invoice", "commercial"},
	{"common law", "common_law"},
	{"federal", "federal"},
	{"united states", "federal"},
	{"state of", "state"},
	{"municipal", "state"},
}

var frameworks = map[string]string{
	"commercial": "UCC",
	"common_law": "Common Law",
	"federal":    "Constitutional",
	"state":      "Statutory",
}

var orgSuffixes = []string{"Inc", "LLC", "Corp", "Company", "Department", "Agency", "Court", "Bank", "County", "Bureau", "Patrol"}

// Interpret classifies text into a SituationContext. Hint fields, when
// present, override the detected values. Empty or malformed text yields
// the default context (general, medium urgency, unknown jurisdiction).
func (in *Interpreter) Interpret(text string, hint *model.ContextHint) model.SituationContext {
	lower := strings.ToLower(text)

	ctx := model.SituationContext{
		Type:         detectType(lower),
		Urgency:      detectUrgency(lower),
		Jurisdiction: detectJurisdiction(lower),
		Entities:     extractEntities(text),
	}

	if hint != nil {
		if hint.Type != "" {
			ctx.Type = hint.Type
		}
		if hint.Jurisdiction != "" {
			ctx.Jurisdiction.Primary = hint.Jurisdiction
		}
	}

	ctx.LegalFramework = frameworks[ctx.Jurisdiction.Primary]
	if ctx.LegalFramework == "" {
		ctx.LegalFramework = "General"
	}
	ctx.Summary = summarize(ctx)

	return ctx
}

func detectType(lower string) model.SituationType {
	for _, st := range situationOrder {
		for _, kw := range situationKeywords[st] {
			if strings.Contains(lower, kw) {
				return st
			}
		}
	}
	return model.SituationGeneral
}

func detectUrgency(lower string) model.UrgencyLevel {
	for _, kw := range highUrgencyKeywords {
		if strings.Contains(lower, kw) {
			return model.UrgencyHigh
		}
	}
	for _, kw := range lowUrgencyKeywords {
		if strings.Contains(lower, kw) {
			return model.UrgencyLow
		}
	}
	return model.UrgencyMedium
}

func detectJurisdiction(lower string) model.Jurisdiction {
	j := model.Jurisdiction{Primary: "unknown"}
	for _, entry := range jurisdictionKeywords {
		if strings.Contains(lower, entry.term) {
			if j.Primary == "unknown" {
				j.Primary = entry.primary
			} else if entry.primary != j.Primary && j.Secondary == "" {
				j.Secondary = entry.primary
			}
		}
	}
	return j
}

// extractEntities pulls out probable names: consecutive capitalized
// words become people, capitalized phrases ending in an organization
// suffix become organizations. Heuristic, not NLP.
func extractEntities(text string) model.Entities {
	var entities model.Entities
	seenPeople := map[string]bool{}
	seenOrgs := map[string]bool{}

	words := strings.Fields(text)
	var run []string

	flush := func() {
		if len(run) < 2 {
			run = nil
			return
		}
		phrase := strings.Join(run, " ")
		if hasOrgSuffix(run[len(run)-1]) {
			if !seenOrgs[phrase] {
				seenOrgs[phrase] = true
				entities.Organizations = append(entities.Organizations, phrase)
			}
		} else if len(run) <= 3 {
			if !seenPeople[phrase] {
				seenPeople[phrase] = true
				entities.People = append(entities.People, phrase)
			}
		}
		run = nil
	}

	for _, w := range words {
		trimmed := strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if trimmed == "" || !isCapitalized(trimmed) || (len(run) == 0 && leadingStopword(trimmed)) {
			flush()
			continue
		}
		run = append(run, trimmed)
		if strings.ContainsAny(w, ".,;:!?") {
			flush()
		}
	}
	flush()

	return entities
}

func isCapitalized(w string) bool {
	r := []rune(w)
	return len(r) > 0 && unicode.IsUpper(r[0])
}

// leadingStopword filters sentence-initial capitals that start a run
func leadingStopword(w string) bool {
	switch strings.ToLower(w) {
	case "the", "a", "an", "this", "that", "i", "my", "your", "to", "in", "on", "all":
		return true
	}
	return false
}

func hasOrgSuffix(w string) bool {
	w = strings.TrimRight(w, ".,;:!?")
	for _, suffix := range orgSuffixes {
		if w == suffix {
			return true
		}
	}
	return false
}

func summarize(ctx model.SituationContext) string {
	return fmt.Sprintf("Classified as %s (urgency: %s, jurisdiction: %s)",
		ctx.Type, ctx.Urgency, ctx.Jurisdiction.Primary)
}
