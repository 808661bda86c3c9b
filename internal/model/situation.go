package model

// SituationType classifies the legal situation described by the input
type SituationType string

const (
	SituationTrafficStop  SituationType = "traffic_stop"
	SituationFeeDemand    SituationType = "fee_demand"
	SituationCourtSummons SituationType = "court_summons"
	SituationGeneral      SituationType = "general"
)

// UrgencyLevel indicates how time-sensitive the situation is
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

// Jurisdiction holds the primary and any secondary jurisdiction tags
type Jurisdiction struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
}

// Entities holds names extracted from the input text
type Entities struct {
	People        []string `json:"people,omitempty"`
	Organizations []string `json:"organizations,omitempty"`
}

// SituationContext is the structured classification of the input text.
// It is created once by the interpreter and read-only downstream.
type SituationContext struct {
	Type           SituationType `json:"type"`
	Urgency        UrgencyLevel  `json:"urgency"`
	Jurisdiction   Jurisdiction  `json:"jurisdiction"`
	Entities       Entities      `json:"entities"`
	Summary        string        `json:"summary,omitempty"`
	LegalFramework string        `json:"legal_framework,omitempty"`
}

// ContextHint carries caller-supplied overrides for interpretation
type ContextHint struct {
	Type         SituationType `json:"type,omitempty"`
	Jurisdiction string        `json:"jurisdiction,omitempty"`
}
