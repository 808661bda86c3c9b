package model

// RiskLevel grades the legal risk detected in a text
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Contradiction is one flagged inconsistency between clauses.
// Confidence is bounded to [0, 1].
type Contradiction struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// ToneRisk is the tone and risk assessment of a text
type ToneRisk struct {
	Tone    string    `json:"tone"`
	Risk    RiskLevel `json:"risk_level"`
	Summary string    `json:"summary"`
}

// LegalAnalysis groups the structural and tone findings for the report
type LegalAnalysis struct {
	Clauses        []string        `json:"clauses"`
	Contradictions []Contradiction `json:"contradictions"`
	ToneRisk       ToneRisk        `json:"tone_risk"`
}
