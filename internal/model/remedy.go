package model

// UCCEndorsement maps statutory language to a UCC endorsement flow
type UCCEndorsement struct {
	Article     string `json:"ucc_article"`
	Endorsement string `json:"endorsement"`
	Flow        string `json:"flow"`
}

// RemedyProposal is the synthesized corrective action for a situation.
// Contradictions are carried through unmodified for aggregation.
type RemedyProposal struct {
	Type           string          `json:"type"`
	Description    string          `json:"description"`
	Reasoning      string          `json:"reasoning"`
	Strategies     []string        `json:"legal_strategies"`
	Confidence     float64         `json:"confidence"`
	Contradictions []Contradiction `json:"contradictions"`
	Endorsement    *UCCEndorsement `json:"endorsement,omitempty"`
}

// RecommendationBundle holds the merged, deduplicated action lists.
// Within each list insertion order is preserved and strings are unique.
type RecommendationBundle struct {
	ImmediateActions        []string `json:"immediate_actions"`
	ShortTermActions        []string `json:"short_term_actions"`
	LongTermActions         []string `json:"long_term_actions"`
	Opportunities           []string `json:"opportunities"`
	Warnings                []string `json:"warnings"`
	SovereigntyImprovements []string `json:"sovereignty_improvements"`
}
