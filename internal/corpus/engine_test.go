package corpus

import (
	"strings"
	"testing"

	"github.com/verobrix/verobrix/internal/model"
)

func testStore(cases, statutes []model.Record) *Store {
	s := &Store{}
	s.setRecords(model.KindCaseLaw, cases)
	s.setRecords(model.KindStatute, statutes)
	s.setRecords(model.KindConstitutional, builtinConstitutional())
	s.setRecords(model.KindAffidavit, builtinAffidavits())
	return s
}

func TestEngine_EmptyQueryReturnsNothing(t *testing.T) {
	engine := NewEngine(NewBuiltinStore())

	for _, query := range []string{"", "   ", "\t\n"} {
		if got := engine.SearchCaseLaw(query, Filters{}); len(got) != 0 {
			t.Errorf("SearchCaseLaw(%q) returned %d matches, want 0", query, len(got))
		}
		if got := engine.SearchStatutes(query, ""); len(got) != 0 {
			t.Errorf("SearchStatutes(%q) returned %d matches, want 0", query, len(got))
		}
	}
}

func TestEngine_PhraseMatchOutranksScatteredTerms(t *testing.T) {
	cases := []model.Record{
		{
			Kind: model.KindCaseLaw,
			Name: "Scattered Terms Case",
			Body: "The sovereign nature of the states is distinct from any immunity question considered here in passing.",
		},
		{
			Kind: model.KindCaseLaw,
			Name: "Exact Phrase Case",
			Body: "The doctrine of sovereign immunity protects the state from suit without its consent in most circumstances.",
		},
	}

	engine := NewEngine(testStore(cases, nil))
	matches := engine.SearchCaseLaw("sovereign immunity", Filters{})

	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	if matches[0].Record.Name != "Exact Phrase Case" {
		t.Errorf("Expected exact phrase case ranked first, got %q", matches[0].Record.Name)
	}
	if matches[0].Score < 1.0 {
		t.Errorf("Expected phrase match score >= 1.0, got %f", matches[0].Score)
	}
	if matches[1].Score >= matches[0].Score {
		t.Errorf("Scattered-term score %f should be below phrase score %f", matches[1].Score, matches[0].Score)
	}
}

func TestEngine_ScoreMonotonicInTermOccurrences(t *testing.T) {
	one := model.Record{Kind: model.KindCaseLaw, Name: "One", Body: "The right to travel is mentioned once in this sufficiently long holding text."}
	three := model.Record{Kind: model.KindCaseLaw, Name: "Three", Body: "The remedy of remedy upon remedy appears repeatedly in this sufficiently long holding text."}

	engine := NewEngine(testStore([]model.Record{one, three}, nil))

	mOne, ok := engine.scoreRecord([]string{"travel"}, one)
	if !ok {
		t.Fatal("Expected single-occurrence record to score above threshold")
	}
	mThree, ok := engine.scoreRecord([]string{"remedy"}, three)
	if !ok {
		t.Fatal("Expected repeated-occurrence record to score above threshold")
	}
	if mThree.Score <= mOne.Score {
		t.Errorf("Score should grow with occurrences: 3 hits %f <= 1 hit %f", mThree.Score, mOne.Score)
	}
}

func TestEngine_ScoreClampedAtMaximum(t *testing.T) {
	body := strings.Repeat("rights remedy notice lawful jurisdiction ", 50)
	rec := model.Record{Kind: model.KindCaseLaw, Name: "rights remedy notice", Body: body}

	engine := NewEngine(testStore([]model.Record{rec}, nil))
	m, ok := engine.scoreRecord(queryTerms("rights remedy notice"), rec)
	if !ok {
		t.Fatal("Expected record to score")
	}
	if m.Score > maxRelevance {
		t.Errorf("Score %f exceeds cap %f", m.Score, maxRelevance)
	}
	if m.Score != maxRelevance {
		t.Errorf("Heavily matching record should hit the cap, got %f", m.Score)
	}
}

func TestEngine_ResultCaps(t *testing.T) {
	var cases, statutes []model.Record
	for i := 0; i < 30; i++ {
		cases = append(cases, model.Record{
			Kind: model.KindCaseLaw,
			Name: "Case",
			Body: "This holding discusses jurisdiction and jurisdiction questions at considerable length for testing.",
		})
		statutes = append(statutes, model.Record{
			Kind: model.KindStatute,
			Name: "Statute",
			Body: "This statute addresses jurisdiction and jurisdiction matters at considerable length for testing.",
		})
	}

	engine := NewEngine(testStore(cases, statutes))

	if got := engine.SearchCaseLaw("jurisdiction", Filters{}); len(got) > maxCaseResults {
		t.Errorf("Case-law results %d exceed cap %d", len(got), maxCaseResults)
	}
	if got := engine.SearchStatutes("jurisdiction", ""); len(got) > maxStatuteResults {
		t.Errorf("Statute results %d exceed cap %d", len(got), maxStatuteResults)
	}

	report := engine.SearchAuthorities("jurisdiction")
	caseRecs := 0
	statuteRecs := 0
	for _, r := range report.Recommended {
		switch r.Type {
		case model.KindCaseLaw:
			caseRecs++
		case model.KindStatute:
			statuteRecs++
		}
	}
	if caseRecs > recommendedCases {
		t.Errorf("Recommended cases %d exceed %d", caseRecs, recommendedCases)
	}
	if statuteRecs > recommendedStatutes {
		t.Errorf("Recommended statutes %d exceed %d", statuteRecs, recommendedStatutes)
	}
}

func TestEngine_FiltersApplyBeforeScoring(t *testing.T) {
	cases := []model.Record{
		{
			Kind:         model.KindCaseLaw,
			Name:         "Federal Case",
			Jurisdiction: "supreme_court",
			RemedyTypes:  []string{"sovereignty"},
			Body:         "A strong holding about travel rights and lawful remedy for every citizen of the republic.",
		},
		{
			Kind:         model.KindCaseLaw,
			Name:         "State Case",
			Jurisdiction: "state",
			RemedyTypes:  []string{"rights_protection"},
			Body:         "A strong holding about travel rights and lawful remedy for every citizen of the republic.",
		},
	}

	engine := NewEngine(testStore(cases, nil))

	matches := engine.SearchCaseLaw("travel rights", Filters{Jurisdiction: "state"})
	if len(matches) != 1 || matches[0].Record.Name != "State Case" {
		t.Fatalf("Jurisdiction filter failed: %+v", matches)
	}

	matches = engine.SearchCaseLaw("travel rights", Filters{RemedyType: "sovereignty"})
	if len(matches) != 1 || matches[0].Record.Name != "Federal Case" {
		t.Fatalf("Remedy-type filter failed: %+v", matches)
	}
}

func TestEngine_EqualScoresKeepStoreOrder(t *testing.T) {
	body := "An identical holding mentioning remedy exactly once for deterministic ordering checks."
	cases := []model.Record{
		{Kind: model.KindCaseLaw, Name: "Alpha", Body: body},
		{Kind: model.KindCaseLaw, Name: "Beta", Body: body},
		{Kind: model.KindCaseLaw, Name: "Gamma", Body: body},
	}

	engine := NewEngine(testStore(cases, nil))
	matches := engine.SearchCaseLaw("remedy", Filters{})

	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(matches))
	}
	for i, want := range []string{"Alpha", "Beta", "Gamma"} {
		if matches[i].Record.Name != want {
			t.Errorf("Position %d: got %q, want %q", i, matches[i].Record.Name, want)
		}
	}
}

func TestEngine_EmptyBodySkippedNotScored(t *testing.T) {
	cases := []model.Record{
		{Kind: model.KindCaseLaw, Name: "Empty Body Remedy Case", Body: ""},
		{Kind: model.KindCaseLaw, Name: "Real Case", Body: "A genuine holding discussing the available remedy in commercial matters."},
	}

	engine := NewEngine(testStore(cases, nil))
	matches := engine.SearchCaseLaw("remedy", Filters{})

	for _, m := range matches {
		if m.Record.Name == "Empty Body Remedy Case" {
			t.Error("Record with empty body should be skipped")
		}
	}
}

func TestExtractQuote(t *testing.T) {
	body := "Short one. The individual may stand upon his constitutional rights as a citizen. He is entitled to carry on his private business in his own way."

	quote := extractQuote([]string{"constitutional", "rights"}, body)
	if !strings.Contains(quote, "constitutional rights") {
		t.Errorf("Expected best sentence containing terms, got %q", quote)
	}
	if strings.Contains(quote, "Short one") {
		t.Errorf("Fragment below minimum length should not be selected: %q", quote)
	}

	// No term matches: truncated prefix fallback
	long := strings.Repeat("x", 300)
	fallback := extractQuote([]string{"absent"}, long)
	if len(fallback) != quoteFallbackLength+3 {
		t.Errorf("Expected truncated prefix of %d chars plus ellipsis, got %d", quoteFallbackLength, len(fallback))
	}
}

func TestEngine_SearchAuthoritiesSummary(t *testing.T) {
	engine := NewEngine(NewBuiltinStore())

	report := engine.SearchAuthorities("constitutional rights")
	if report.Summary == "" {
		t.Error("Expected non-empty summary")
	}
	if len(report.CaseLaw) == 0 {
		t.Error("Expected case-law matches from the built-in corpus")
	}

	empty := engine.SearchAuthorities("zzzqqqxxx")
	if !strings.Contains(empty.Summary, "No direct matches") {
		t.Errorf("Expected no-match summary, got %q", empty.Summary)
	}
}

func TestEngine_ModelAffidavitsFilter(t *testing.T) {
	engine := NewEngine(NewBuiltinStore())

	all := engine.ModelAffidavits("")
	if len(all) < 2 {
		t.Fatalf("Expected built-in affidavits, got %d", len(all))
	}

	filtered := engine.ModelAffidavits("jurisdiction")
	for _, a := range filtered {
		if !containsString(a.Types, "jurisdiction") {
			t.Errorf("Affidavit %q does not carry requested type", a.Name)
		}
	}
	if len(filtered) == 0 {
		t.Error("Expected at least one jurisdiction affidavit")
	}
}
