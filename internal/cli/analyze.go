package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verobrix/verobrix/internal/model"
	"github.com/verobrix/verobrix/internal/pipeline"
)

var (
	inputFile    string
	inputText    string
	contextType  string
	jurisdiction string
	searchQuery  string
	outputDir    string
	noLedger     bool
	noCache      bool
	llmEnabled   bool
	llmProvider  string
	llmModel     string
	timeout      time.Duration
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a legal situation from text",
	Long: `Analyze runs the full pipeline over one situation:
- Classify the situation type, urgency, and jurisdiction
- Extract clauses and detect contradictions
- Score the language on the sovereignty scale
- Propose a remedy and aggregate recommendations

Example:
  verobrix analyze -f situation.txt
  verobrix analyze -t "I was pulled over and cited for no registration"
  verobrix analyze -f notice.txt --context fee_demand --query "without prejudice"`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&inputFile, "file", "f", "", "input text file")
	analyzeCmd.Flags().StringVarP(&inputText, "text", "t", "", "input text (inline)")
	analyzeCmd.Flags().StringVar(&contextType, "context", "", "situation type hint (traffic_stop, fee_demand, court_summons, general)")
	analyzeCmd.Flags().StringVar(&jurisdiction, "jurisdiction", "", "jurisdiction hint")
	analyzeCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "also search the authority corpus")
	analyzeCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "result output directory (default from config)")
	analyzeCmd.Flags().BoolVar(&noLedger, "no-ledger", false, "disable the provenance ledger")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the search report cache")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")

	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable plain-language summary generation")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "summary provider (openai, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "summary model name")
}

// readInput resolves the input text from flags
func readInput() (string, error) {
	switch {
	case inputFile != "" && inputText != "":
		return "", fmt.Errorf("use --file or --text, not both")
	case inputFile != "":
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	case inputText != "":
		return strings.TrimSpace(inputText), nil
	default:
		return "", fmt.Errorf("provide input with --file or --text")
	}
}

// buildHint converts the hint flags, validating the situation type
func buildHint() (*model.ContextHint, error) {
	if contextType == "" && jurisdiction == "" {
		return nil, nil
	}
	hint := &model.ContextHint{Jurisdiction: jurisdiction}
	if contextType != "" {
		switch t := model.SituationType(contextType); t {
		case model.SituationTrafficStop, model.SituationFeeDemand,
			model.SituationCourtSummons, model.SituationGeneral:
			hint.Type = t
		default:
			return nil, fmt.Errorf("unknown situation type: %s", contextType)
		}
	}
	return hint, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput()
	if err != nil {
		return err
	}
	hint, err := buildHint()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noLedger {
		cfg.Ledger.Enabled = false
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		if llmModel != "" {
			cfg.LLM.Model = llmModel
		}
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	p, cleanup, err := buildPipeline(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := p.Analyze(ctx, model.AnalysisInput{
		RawText: text,
		Hint:    hint,
		Query:   searchQuery,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.Dir)
	path, err := renderer.WriteJSON(result)
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	fmt.Println(renderer.Summary(result))
	fmt.Printf("Full result: %s\n", path)
	return nil
}
