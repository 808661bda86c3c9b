// Package remedy maps an interpreted situation and its risk profile
// to a remedy category, strategies, and supporting documents.
package remedy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/verobrix/verobrix/internal/model"
)

// SynthesisInput carries the signals the decision table keys on
type SynthesisInput struct {
	SituationType  model.SituationType
	RiskLevel      model.RiskLevel
	Urgency        model.UrgencyLevel
	Jurisdiction   model.Jurisdiction
	Contradictions []model.Contradiction

	// RawText, when provided, is scanned for UCC endorsement language
	RawText string
}

// tableEntry is one row of the remedy decision table
type tableEntry struct {
	remedyType  string
	description string
	reasoning   string
	strategies  []string
	confidence  float64
}

// decisionTable keys remedy selection on situation type. Risk level
// adjusts the selected entry rather than picking a different row.
var decisionTable = map[model.SituationType]tableEntry{
	model.SituationTrafficStop: {
		remedyType:  "Administrative Notice",
		description: "Prepare a lawful notice of travel and challenge the citation on the record.",
		reasoning:   "Traffic encounters turn on the distinction between private travel and commercial driving.",
		strategies:  []string{"Document all details of the encounter", "Challenge jurisdiction", "Demand the claim be proven on the record"},
		confidence:  0.85,
	},
	model.SituationFeeDemand: {
		remedyType:  "UCC Administrative Process",
		description: "Generate and send a Notice of Defect rejecting the presentment.",
		reasoning:   "A demand for payment without a valid contract or lawful basis is a defective presentment.",
		strategies:  []string{"Request the fee schedule and lawful basis", "Send notice and opportunity to cure", "Reserve all rights without prejudice"},
		confidence:  0.88,
	},
	model.SituationCourtSummons: {
		remedyType:  "Jurisdictional Challenge",
		description: "Respond within the deadline by special appearance challenging jurisdiction.",
		reasoning:   "A summons presumes jurisdiction; an unrebutted presumption stands.",
		strategies:  []string{"Calculate the response deadline", "File a special appearance", "Challenge jurisdiction before the merits"},
		confidence:  0.8,
	},
}

// genericEntry is the fallback for unknown situation types
var genericEntry = tableEntry{
	remedyType:  "UCC Administrative Process",
	description: "Generate and send a Notice of Defect.",
	reasoning:   "Without a specific situation classification, the baseline administrative process preserves rights while the matter is clarified.",
	strategies:  []string{"Challenge jurisdiction", "Send notice and opportunity to cure"},
	confidence:  0.6,
}

// endorsementFlows maps trigger phrases to UCC endorsement flows
var endorsementFlows = []struct {
	phrase string
	result model.UCCEndorsement
}{
	{"accepted for value", model.UCCEndorsement{Article: "UCC § 3-409", Endorsement: "Accepted for Value", Flow: "HJR-192 Discharge"}},
	{"without recourse", model.UCCEndorsement{Article: "UCC § 3-415", Endorsement: "Without Recourse", Flow: "Accommodation Party"}},
}

// Synthesizer produces remedy proposals and fills document templates
type Synthesizer struct {
	templates map[string]string
}

// NewSynthesizer creates a remedy synthesizer with built-in templates
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		templates: map[string]string{
			"traffic_stop": "To OFFICER {OFFICER} of the {AGENCY}, this notice concerns our encounter. This is a lawful notice of travel by {INDIVIDUAL_NAME}.",
			"fee_demand":   "NOTICE: Your demand for payment is rejected for failure to provide a valid contract or lawful basis. All rights reserved.",
		},
	}
}

// Synthesize selects a remedy from the decision table. Unknown
// situation types fall back to the generic administrative process;
// this never fails. Contradictions pass through unmodified.
func (s *Synthesizer) Synthesize(input SynthesisInput) model.RemedyProposal {
	entry, ok := decisionTable[input.SituationType]
	if !ok {
		entry = genericEntry
	}

	description := entry.description
	strategies := append([]string(nil), entry.strategies...)
	confidence := entry.confidence

	// High risk escalates the paper: conditional acceptance instead of
	// outright rejection, and counsel in the strategy list.
	if input.RiskLevel == model.RiskHigh {
		description = "Generate and send a Conditional Acceptance for Value (CAFV)."
		strategies = append(strategies, "Seek competent counsel given the high-risk posture")
		confidence -= 0.1
	}

	reasoning := entry.reasoning
	if len(input.Contradictions) > 0 {
		reasoning = fmt.Sprintf("%s The presentment also contains %d contradiction(s), indicating a flawed instrument.", reasoning, len(input.Contradictions))
	}

	contradictions := input.Contradictions
	if contradictions == nil {
		contradictions = []model.Contradiction{}
	}

	return model.RemedyProposal{
		Type:           entry.remedyType,
		Description:    description,
		Reasoning:      reasoning,
		Strategies:     strategies,
		Confidence:     clamp01(confidence),
		Contradictions: contradictions,
		Endorsement:    mapEndorsement(input.RawText),
	}
}

// mapEndorsement scans text for UCC endorsement language. First
// matching phrase wins; absence returns nil.
func mapEndorsement(text string) *model.UCCEndorsement {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	for _, flow := range endorsementFlows {
		if strings.Contains(lower, flow.phrase) {
			e := flow.result
			return &e
		}
	}
	return nil
}

// Templates lists the available document template names
func (s *Synthesizer) Templates() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerateDocument fills a template's {KEY} placeholders from vars
func (s *Synthesizer) GenerateDocument(name string, vars map[string]string) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template %q", name)
	}
	doc := tmpl
	for key, value := range vars {
		doc = strings.ReplaceAll(doc, "{"+key+"}", value)
	}
	return doc, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
