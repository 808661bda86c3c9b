package model

// SovereigntyLevel classifies a text on the servile-to-sovereign axis
type SovereigntyLevel string

const (
	LevelServile      SovereigntyLevel = "Servile"
	LevelTransitional SovereigntyLevel = "Transitional"
	LevelSovereign    SovereigntyLevel = "Sovereign"
)

// SovereigntyMetrics is the full scoring breakdown for one text.
// OverallScore is bounded to [0, 1]; 0.5 is the neutral default when
// no indicator terms matched at all.
type SovereigntyMetrics struct {
	OverallScore  float64 `json:"overall_score"`
	LanguageScore float64 `json:"language_score"`
	RemedyScore   float64 `json:"remedy_score"`
	AutonomyScore float64 `json:"autonomy_score"`

	Level SovereigntyLevel `json:"sovereignty_level"`

	SovereignIndicators []string `json:"sovereign_indicators,omitempty"`
	ServileFlags        []string `json:"servile_flags,omitempty"`

	ImprovementSuggestions []string `json:"improvement_suggestions,omitempty"`
}
