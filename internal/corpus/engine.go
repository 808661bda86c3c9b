package corpus

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/verobrix/verobrix/internal/model"
)

const (
	// minRelevance is the score below which a match is discarded
	minRelevance = 0.1

	// maxRelevance caps the final score of any match
	maxRelevance = 2.0

	maxCaseResults    = 20
	maxStatuteResults = 15

	recommendedCases    = 3
	recommendedStatutes = 2

	// minQuoteLength filters sentence fragments out of quote extraction
	minQuoteLength = 20

	quoteFallbackLength = 200
)

// Engine performs term-based relevance search over the corpus store.
// Searches are deterministic: equal scores keep store iteration order.
type Engine struct {
	store *Store
}

// NewEngine creates a relevance engine over the given store
func NewEngine(store *Store) *Engine {
	return &Engine{store: store}
}

// Filters restricts a case-law search before scoring
type Filters struct {
	Jurisdiction string
	RemedyType   string
}

// SearchCaseLaw searches the case-law corpus, returning up to 20
// matches sorted by descending relevance. Empty queries match nothing.
func (e *Engine) SearchCaseLaw(query string, f Filters) []model.RelevanceMatch {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	var matches []model.RelevanceMatch
	for _, rec := range e.store.CaseLaw() {
		if f.Jurisdiction != "" && rec.Jurisdiction != f.Jurisdiction {
			continue
		}
		if f.RemedyType != "" && !containsString(rec.RemedyTypes, f.RemedyType) {
			continue
		}
		if m, ok := e.scoreRecord(terms, rec); ok {
			matches = append(matches, m)
		}
	}

	return capMatches(sortMatches(matches), maxCaseResults)
}

// SearchStatutes searches remedy statutes, optionally filtered by code
// type (UCC, USC, CFR), returning up to 15 matches.
func (e *Engine) SearchStatutes(query, codeType string) []model.RelevanceMatch {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	var matches []model.RelevanceMatch
	for _, rec := range e.store.Statutes() {
		if codeType != "" && rec.CodeType != codeType {
			continue
		}
		if m, ok := e.scoreRecord(terms, rec); ok {
			matches = append(matches, m)
		}
	}

	return capMatches(sortMatches(matches), maxStatuteResults)
}

// SearchConstitutional searches constitutional provisions
func (e *Engine) SearchConstitutional(query string) []model.RelevanceMatch {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	var matches []model.RelevanceMatch
	for _, rec := range e.store.Constitutional() {
		if m, ok := e.scoreRecord(terms, rec); ok {
			matches = append(matches, m)
		}
	}

	return sortMatches(matches)
}

// ModelAffidavits returns affidavit templates, optionally filtered by
// type (status_correction, jurisdiction, rights_assertion).
func (e *Engine) ModelAffidavits(affidavitType string) []model.Record {
	var out []model.Record
	for _, rec := range e.store.Affidavits() {
		if affidavitType != "" && !containsString(rec.Types, affidavitType) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// SearchAuthorities fans the query out across case law, statutes, and
// constitutional provisions and merges the results into one report.
func (e *Engine) SearchAuthorities(query string) *model.AuthorityReport {
	return e.SearchAuthoritiesFiltered(query, Filters{})
}

// SearchAuthoritiesFiltered is SearchAuthorities with the case-law
// filters applied before scoring
func (e *Engine) SearchAuthoritiesFiltered(query string, f Filters) *model.AuthorityReport {
	cases := e.SearchCaseLaw(query, f)
	statutes := e.SearchStatutes(query, "")
	constitutional := e.SearchConstitutional(query)

	return &model.AuthorityReport{
		Query:          query,
		SearchedAt:     time.Now().UTC(),
		CaseLaw:        cases,
		Statutes:       statutes,
		Constitutional: constitutional,
		Affidavits:     e.ModelAffidavits(""),
		Recommended:    recommendAuthorities(cases, statutes),
		Summary:        searchSummary(cases, statutes, constitutional),
	}
}

// queryTerms tokenizes a query into lowercase terms
func queryTerms(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// scoreRecord scores one record against the query terms. Records with
// an empty body are skipped. The per-record score is:
//
//	+1.0 when the full query phrase appears verbatim in the body text
//	+0.1 per occurrence of each individual term in the body text
//	+0.5 per term that also appears in the record name or citation
//
// clamped to [0, 2.0]. Matches at or below the minimum relevance
// threshold are rejected.
func (e *Engine) scoreRecord(terms []string, rec model.Record) (model.RelevanceMatch, bool) {
	if strings.TrimSpace(rec.Body) == "" {
		return model.RelevanceMatch{}, false
	}

	searchText := strings.ToLower(strings.Join(append([]string{rec.Body},
		append(rec.KeyPrinciples, rec.KeyProvisions...)...), " "))

	score := 0.0

	phrase := strings.Join(terms, " ")
	if strings.Contains(searchText, phrase) {
		score += 1.0
	}

	for _, term := range terms {
		score += float64(strings.Count(searchText, term)) * 0.1
	}

	title := strings.ToLower(rec.Name + " " + rec.Citation)
	for _, term := range terms {
		if strings.Contains(title, term) {
			score += 0.5
		}
	}

	if score > maxRelevance {
		score = maxRelevance
	}
	if score <= minRelevance {
		return model.RelevanceMatch{}, false
	}

	return model.RelevanceMatch{
		Record: rec,
		Score:  score,
		Quote:  extractQuote(terms, rec.Body),
	}, true
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// extractQuote selects the sentence of the body containing the most
// query terms, ties broken by first occurrence. Sentences shorter than
// the minimum quote length are ignored as fragments. When no sentence
// scores, a truncated body prefix is returned instead.
func extractQuote(terms []string, body string) string {
	best := ""
	bestScore := 0

	for _, sentence := range sentenceSplit.Split(body, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < minQuoteLength {
			continue
		}
		lower := strings.ToLower(sentence)
		score := 0
		for _, term := range terms {
			if strings.Contains(lower, term) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = sentence
		}
	}

	if bestScore > 0 {
		return best
	}
	if len(body) > quoteFallbackLength {
		return body[:quoteFallbackLength] + "..."
	}
	return body
}

// sortMatches orders matches by descending score; the stable sort
// preserves store order between equal scores.
func sortMatches(matches []model.RelevanceMatch) []model.RelevanceMatch {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func capMatches(matches []model.RelevanceMatch, limit int) []model.RelevanceMatch {
	if len(matches) > limit {
		return matches[:limit]
	}
	return matches
}

// recommendAuthorities surfaces the strongest citations: the top
// cases and top statutes by relevance.
func recommendAuthorities(cases, statutes []model.RelevanceMatch) []model.RecommendedAuthority {
	var out []model.RecommendedAuthority

	for i, c := range cases {
		if i >= recommendedCases {
			break
		}
		out = append(out, model.RecommendedAuthority{
			Type:      model.KindCaseLaw,
			Authority: c.Record.Name,
			Citation:  c.Record.Citation,
			Reason:    "High relevance and precedent value",
		})
	}

	for i, s := range statutes {
		if i >= recommendedStatutes {
			break
		}
		out = append(out, model.RecommendedAuthority{
			Type:      model.KindStatute,
			Authority: s.Record.Name,
			Citation:  s.Record.Citation,
			Reason:    "Direct statutory authority",
		})
	}

	return out
}

func searchSummary(cases, statutes, constitutional []model.RelevanceMatch) string {
	var parts []string
	if len(cases) > 0 {
		parts = append(parts, fmt.Sprintf("Found %d relevant case law authorities", len(cases)))
	}
	if len(statutes) > 0 {
		parts = append(parts, fmt.Sprintf("Found %d relevant statutes and codes", len(statutes)))
	}
	if len(constitutional) > 0 {
		parts = append(parts, fmt.Sprintf("Found %d constitutional provisions", len(constitutional)))
	}
	if len(parts) == 0 {
		return "No direct matches found. Consider refining search terms."
	}
	return strings.Join(parts, ". ") + "."
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
