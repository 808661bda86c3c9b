// Package pipeline wires the analysis stages into one orchestrated
// run per input. Stage order is fixed; every stage is recorded in the
// provenance ledger under the session id.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verobrix/verobrix/internal/analyze"
	"github.com/verobrix/verobrix/internal/cache"
	"github.com/verobrix/verobrix/internal/corpus"
	"github.com/verobrix/verobrix/internal/interpret"
	"github.com/verobrix/verobrix/internal/llm"
	"github.com/verobrix/verobrix/internal/model"
	"github.com/verobrix/verobrix/internal/provenance"
	"github.com/verobrix/verobrix/internal/recommend"
	"github.com/verobrix/verobrix/internal/remedy"
	"github.com/verobrix/verobrix/internal/sovereignty"
)

// Version is stamped into every analysis result
const Version = "1.0.0"

// Stage ids, in run order. The registry is static: composing a
// pipeline with an id not listed here is a construction error.
const (
	StageInterpret   = "interpret"
	StageAnalyze     = "analyze"
	StageSovereignty = "sovereignty"
	StageRemedy      = "remedy"
	StageRecommend   = "recommend"
	StageSearch      = "corpus_search"
	StageSummary     = "llm_summary"
)

var defaultStages = []string{
	StageInterpret,
	StageAnalyze,
	StageSovereignty,
	StageRemedy,
	StageRecommend,
	StageSearch,
	StageSummary,
}

// Pipeline orchestrates the complete analysis process
type Pipeline struct {
	interpreter *interpret.Interpreter
	clauses     *analyze.ClauseExtractor
	detector    analyze.ContradictionDetector
	tone        *analyze.ToneAnalyzer
	scorer      *sovereignty.Scorer
	synthesizer *remedy.Synthesizer
	aggregator  *recommend.Aggregator
	engine      *corpus.Engine
	reports     *cache.ReportCache
	ledger      provenance.Ledger
	provider    llm.Provider
	logger      *zap.Logger
	config      *model.Config

	stages map[string]stageFunc
	order  []string
}

// stageFunc mutates the in-progress session. A returned error marks
// the stage degraded; the run continues on defaults.
type stageFunc func(ctx context.Context, s *session) error

// session is the mutable state threaded through the stages
type session struct {
	input  model.AnalysisInput
	result *model.AnalysisResult
}

// Option customizes pipeline construction
type Option func(*Pipeline)

// WithLedger sets the provenance ledger
func WithLedger(l provenance.Ledger) Option {
	return func(p *Pipeline) { p.ledger = l }
}

// WithReportCache sets the search report cache
func WithReportCache(rc *cache.ReportCache) Option {
	return func(p *Pipeline) { p.reports = rc }
}

// WithProvider sets the optional summary provider
func WithProvider(prov llm.Provider) Option {
	return func(p *Pipeline) { p.provider = prov }
}

// WithStages overrides the stage order. Interpret is always required
// because every later stage reads the situation context.
func WithStages(ids []string) Option {
	return func(p *Pipeline) { p.order = ids }
}

// NewPipeline creates a pipeline over the given corpus store
func NewPipeline(cfg *model.Config, store *corpus.Store, logger *zap.Logger, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pipeline{
		interpreter: interpret.NewInterpreter(),
		clauses:     analyze.NewClauseExtractor(),
		detector:    analyze.NewHeuristicDetector(),
		tone:        analyze.NewToneAnalyzer(),
		scorer:      sovereignty.NewScorer(),
		synthesizer: remedy.NewSynthesizer(),
		aggregator:  recommend.NewAggregator(),
		engine:      corpus.NewEngine(store),
		ledger:      provenance.NopLedger{},
		logger:      logger,
		config:      cfg,
		order:       defaultStages,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.stages = map[string]stageFunc{
		StageInterpret:   p.runInterpret,
		StageAnalyze:     p.runAnalyze,
		StageSovereignty: p.runSovereignty,
		StageRemedy:      p.runRemedy,
		StageRecommend:   p.runRecommend,
		StageSearch:      p.runSearch,
		StageSummary:     p.runSummary,
	}
	for _, id := range p.order {
		if _, ok := p.stages[id]; !ok {
			return nil, fmt.Errorf("unknown pipeline stage: %s", id)
		}
	}
	if len(p.order) == 0 || p.order[0] != StageInterpret {
		return nil, fmt.Errorf("pipeline must start with the %s stage", StageInterpret)
	}
	return p, nil
}

// NewSessionID builds a sortable unique session id
func NewSessionID(now time.Time) string {
	return now.UTC().Format("20060102T150405") + "-" + uuid.NewString()[:8]
}

// Analyze runs the full pipeline over one input. It never fails on a
// degraded stage; stage errors are logged, recorded in the ledger,
// and the affected section keeps its zero-value defaults. Empty text
// is not an error: it flows through every stage and comes back as the
// neutral default analysis.
func (p *Pipeline) Analyze(ctx context.Context, input model.AnalysisInput) (*model.AnalysisResult, error) {
	s := &session{
		input: input,
		result: &model.AnalysisResult{
			SessionID: NewSessionID(time.Now()),
			Timestamp: time.Now().UTC(),
			Version:   Version,
			Input:     input,
		},
	}

	p.ledger.Record(s.result.SessionID, "pipeline", "session_start",
		"analysis session started",
		provenance.WithExtra("input_chars", len(input.RawText)))

	for _, id := range p.order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.ledger.Record(s.result.SessionID, id, "stage_start", "stage started")
		if err := p.stages[id](ctx, s); err != nil {
			p.logger.Warn("pipeline stage degraded",
				zap.String("stage", id),
				zap.String("session_id", s.result.SessionID),
				zap.Error(err))
			p.ledger.Record(s.result.SessionID, id, "stage_degraded", err.Error())
			continue
		}
		p.ledger.Record(s.result.SessionID, id, "stage_complete", "stage completed")
	}

	p.ledger.Record(s.result.SessionID, "pipeline", "session_complete",
		"analysis session completed",
		provenance.WithOutput(map[string]any{
			"situation_type":    s.result.Situation.Type,
			"sovereignty_score": s.result.Sovereignty.Input.OverallScore,
			"remedy_type":       s.result.Remedy.Type,
		}))

	return s.result, nil
}

func (p *Pipeline) runInterpret(_ context.Context, s *session) error {
	s.result.Situation = p.interpreter.Interpret(s.input.RawText, s.input.Hint)
	return nil
}

func (p *Pipeline) runAnalyze(_ context.Context, s *session) error {
	clauses := p.clauses.Extract(s.input.RawText)
	s.result.Legal = model.LegalAnalysis{
		Clauses:        clauses,
		Contradictions: p.detector.Detect(clauses),
		ToneRisk:       p.tone.Analyze(s.input.RawText),
	}
	return nil
}

func (p *Pipeline) runSovereignty(_ context.Context, s *session) error {
	s.result.Sovereignty.Input = p.scorer.ScoreText(s.input.RawText)
	return nil
}

func (p *Pipeline) runRemedy(_ context.Context, s *session) error {
	proposal := p.synthesizer.Synthesize(remedy.SynthesisInput{
		SituationType:  s.result.Situation.Type,
		RiskLevel:      s.result.Legal.ToneRisk.Risk,
		Urgency:        s.result.Situation.Urgency,
		Jurisdiction:   s.result.Situation.Jurisdiction,
		Contradictions: s.result.Legal.Contradictions,
		RawText:        s.input.RawText,
	})
	s.result.Remedy = proposal

	// The remedy text gets its own sovereignty reading so drafts can
	// be compared against the input language.
	s.result.Sovereignty.Remedy = p.scorer.ScoreDecision(map[string]string{
		"type":        proposal.Type,
		"description": proposal.Description,
		"reasoning":   proposal.Reasoning,
	})
	return nil
}

func (p *Pipeline) runRecommend(_ context.Context, s *session) error {
	s.result.Recommendations = p.aggregator.Aggregate(
		s.result.Situation,
		s.result.Legal.ToneRisk,
		s.result.Remedy,
		s.result.Sovereignty.Input,
	)
	return nil
}

func (p *Pipeline) runSearch(_ context.Context, s *session) error {
	if s.input.Query == "" {
		return nil
	}

	key := cache.SearchKey(s.input.Query, "", "")
	if p.reports != nil {
		if report, found := p.reports.Get(key); found {
			s.result.CorpusSearch = report
			p.ledger.Record(s.result.SessionID, StageSearch, "cache_hit", "search served from cache")
			return nil
		}
	}

	report := p.engine.SearchAuthorities(s.input.Query)
	s.result.CorpusSearch = report

	if p.reports != nil {
		if err := p.reports.Set(key, report); err != nil {
			p.logger.Warn("report cache write failed", zap.Error(err))
		}
	}
	return nil
}

func (p *Pipeline) runSummary(ctx context.Context, s *session) error {
	if p.provider == nil {
		return nil
	}

	resp, err := p.provider.Summarize(ctx, llm.SummarizeRequest{Result: *s.result})
	if err != nil {
		s.result.LLM = &model.LLMSummary{
			Enabled:  true,
			Provider: p.provider.Name(),
			Warnings: []string{err.Error()},
		}
		return fmt.Errorf("summary generation: %w", err)
	}

	s.result.LLM = &model.LLMSummary{
		Enabled:   true,
		Provider:  p.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}
	return nil
}

// Search runs a standalone corpus search outside a full analysis
func (p *Pipeline) Search(query string, f corpus.Filters) (*model.AuthorityReport, error) {
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}

	key := cache.SearchKey(query, f.Jurisdiction, f.RemedyType)
	if p.reports != nil {
		if report, found := p.reports.Get(key); found {
			return report, nil
		}
	}

	report := p.engine.SearchAuthoritiesFiltered(query, f)
	if p.reports != nil {
		if err := p.reports.Set(key, report); err != nil {
			p.logger.Warn("report cache write failed", zap.Error(err))
		}
	}
	return report, nil
}
