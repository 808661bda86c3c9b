package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verobrix/verobrix/internal/corpus"
	"github.com/verobrix/verobrix/internal/pipeline"
)

var (
	searchJurisdiction string
	searchRemedyType   string
	searchJSON         bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search the authority corpus",
	Long: `Search fans a query out across case law, statutes, and
constitutional provisions and ranks the matches by relevance.

Example:
  verobrix search right to travel
  verobrix search "without prejudice" --jurisdiction commercial
  verobrix search due process --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchJurisdiction, "jurisdiction", "", "restrict case law to a jurisdiction")
	searchCmd.Flags().StringVar(&searchRemedyType, "remedy-type", "", "restrict case law to a remedy type")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print the full report as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// standalone searches are not sessions; skip the ledger
	cfg.Ledger.Enabled = false

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	p, cleanup, err := buildPipeline(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := p.Search(query, corpus.Filters{
		Jurisdiction: searchJurisdiction,
		RemedyType:   searchRemedyType,
	})
	if err != nil {
		return err
	}

	if searchJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(pipeline.NewRenderer(cfg.Output.Dir).SearchSummary(report))
	return nil
}
