package model

import "time"

// RecordKind classifies a legal-authority record
type RecordKind string

const (
	KindCaseLaw        RecordKind = "case_law"
	KindStatute        RecordKind = "statute"
	KindConstitutional RecordKind = "constitutional"
	KindAffidavit      RecordKind = "affidavit"
)

// Record is one legal authority in the corpus. Records are immutable
// once loaded; the corpus store owns them for the process lifetime.
type Record struct {
	Kind         RecordKind `json:"kind" yaml:"kind"`
	Name         string     `json:"name" yaml:"name"`
	Citation     string     `json:"citation,omitempty" yaml:"citation,omitempty"`
	Year         int        `json:"year,omitempty" yaml:"year,omitempty"`
	Jurisdiction string     `json:"jurisdiction,omitempty" yaml:"jurisdiction,omitempty"`

	// Statute-specific
	CodeType string `json:"code_type,omitempty" yaml:"code_type,omitempty"`
	Section  string `json:"section,omitempty" yaml:"section,omitempty"`

	// Body holds the case holding, statute text, or provision text
	Body        string `json:"body,omitempty" yaml:"body,omitempty"`
	Application string `json:"application,omitempty" yaml:"application,omitempty"`

	KeyPrinciples []string `json:"key_principles,omitempty" yaml:"key_principles,omitempty"`
	KeyProvisions []string `json:"key_provisions,omitempty" yaml:"key_provisions,omitempty"`
	RemedyTypes   []string `json:"remedy_types,omitempty" yaml:"remedy_types,omitempty"`

	// Affidavit-specific template fields
	Types            []string `json:"types,omitempty" yaml:"types,omitempty"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	TemplateText     string   `json:"template_text,omitempty" yaml:"template_text,omitempty"`
	RequiredElements []string `json:"required_elements,omitempty" yaml:"required_elements,omitempty"`
	UsageNotes       string   `json:"usage_notes,omitempty" yaml:"usage_notes,omitempty"`
}

// RelevanceMatch is one scored search hit against the corpus.
// Score is bounded to [0, 2.0].
type RelevanceMatch struct {
	Record Record  `json:"record"`
	Score  float64 `json:"relevance_score"`
	Quote  string  `json:"quotable_text,omitempty"`
}

// RecommendedAuthority is a citation surfaced by the combined search
type RecommendedAuthority struct {
	Type      RecordKind `json:"type"`
	Authority string     `json:"authority"`
	Citation  string     `json:"citation"`
	Reason    string     `json:"reason"`
}

// AuthorityReport is the combined result of fanning one query out
// across case law, statutes, and constitutional provisions
type AuthorityReport struct {
	Query          string                 `json:"query"`
	SearchedAt     time.Time              `json:"search_timestamp"`
	CaseLaw        []RelevanceMatch       `json:"case_law"`
	Statutes       []RelevanceMatch       `json:"statutes"`
	Constitutional []RelevanceMatch       `json:"constitutional"`
	Affidavits     []Record               `json:"affidavits"`
	Recommended    []RecommendedAuthority `json:"recommended_authorities"`
	Summary        string                 `json:"summary"`
}
