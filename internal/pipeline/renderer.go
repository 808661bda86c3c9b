package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/verobrix/verobrix/internal/model"
)

// Renderer writes analysis results to the output directory and
// formats the terminal summary
type Renderer struct {
	dir string
}

// NewRenderer creates a renderer targeting the given directory
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// WriteJSON persists the result as <session_id>.json and returns the
// file path
func (r *Renderer) WriteJSON(result *model.AnalysisResult) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	path := filepath.Join(r.dir, result.SessionID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}
	return path, nil
}

// Summary formats the result for terminal output
func (r *Renderer) Summary(result *model.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Session %s\n", result.SessionID)
	fmt.Fprintf(&b, "Situation:   %s (urgency: %s)\n",
		result.Situation.Type, result.Situation.Urgency)
	if result.Situation.Jurisdiction.Primary != "" {
		fmt.Fprintf(&b, "Jurisdiction: %s\n", result.Situation.Jurisdiction.Primary)
	}
	fmt.Fprintf(&b, "Sovereignty: %.2f (%s)\n",
		result.Sovereignty.Input.OverallScore, result.Sovereignty.Input.Level)
	fmt.Fprintf(&b, "Tone risk:   %s\n", result.Legal.ToneRisk.Risk)
	if n := len(result.Legal.Contradictions); n > 0 {
		fmt.Fprintf(&b, "Contradictions: %d\n", n)
	}
	fmt.Fprintf(&b, "Remedy:      %s (confidence %.2f)\n",
		result.Remedy.Type, result.Remedy.Confidence)

	writeList := func(header string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", header)
		for _, item := range items {
			fmt.Fprintf(&b, "  - %s\n", item)
		}
	}
	writeList("Immediate actions", result.Recommendations.ImmediateActions)
	writeList("Warnings", result.Recommendations.Warnings)
	writeList("Opportunities", result.Recommendations.Opportunities)

	if cs := result.CorpusSearch; cs != nil {
		fmt.Fprintf(&b, "\nAuthority search: %s\n", cs.Summary)
		for _, rec := range cs.Recommended {
			fmt.Fprintf(&b, "  - %s, %s (%s)\n", rec.Authority, rec.Citation, rec.Reason)
		}
	}

	if result.LLM != nil && result.LLM.SummaryMD != "" {
		fmt.Fprintf(&b, "\nPlain-language summary (%s):\n%s\n",
			result.LLM.Provider, result.LLM.SummaryMD)
	}

	return b.String()
}

// SearchSummary formats a standalone authority report for terminal
// output
func (r *Renderer) SearchSummary(report *model.AuthorityReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Query: %s\n%s\n", report.Query, report.Summary)

	writeMatches := func(header string, matches []model.RelevanceMatch) {
		if len(matches) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", header)
		for _, m := range matches {
			fmt.Fprintf(&b, "  %.2f  %s, %s\n", m.Score, m.Record.Name, m.Record.Citation)
			if m.Quote != "" {
				fmt.Fprintf(&b, "        %q\n", m.Quote)
			}
		}
	}
	writeMatches("Case law", report.CaseLaw)
	writeMatches("Statutes", report.Statutes)
	writeMatches("Constitutional provisions", report.Constitutional)

	if len(report.Recommended) > 0 {
		b.WriteString("\nRecommended authorities:\n")
		for _, rec := range report.Recommended {
			fmt.Fprintf(&b, "  - %s, %s (%s)\n", rec.Authority, rec.Citation, rec.Reason)
		}
	}
	return b.String()
}
