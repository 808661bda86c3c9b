package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/verobrix/verobrix/internal/model"
	"github.com/verobrix/verobrix/internal/pipeline"
	"github.com/verobrix/verobrix/internal/worker"
)

var (
	concurrency    int
	batchOutputDir string
	batchTimeout   time.Duration
	batchContext   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir-or-manifest>",
	Short: "Analyze multiple situation files in parallel",
	Long: `Batch analyzes many situation files concurrently. The argument
is either a directory of .txt/.md files or a manifest listing one
file path per line. Each file becomes its own session with its own
result file and ledger trail.

Example:
  verobrix batch ./intake
  verobrix batch situations.txt --concurrency 8 --output-dir ./results`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "", "result output directory (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&batchContext, "context", "", "situation type hint applied to every file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	target := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if batchOutputDir != "" {
		cfg.Output.Dir = batchOutputDir
	}
	if concurrency <= 0 {
		concurrency = cfg.Concurrency.Workers
	}

	var hint model.ContextHint
	if batchContext != "" {
		switch t := model.SituationType(batchContext); t {
		case model.SituationTrafficStop, model.SituationFeeDemand,
			model.SituationCourtSummons, model.SituationGeneral:
			hint.Type = t
		default:
			return fmt.Errorf("unknown situation type: %s", batchContext)
		}
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	p, cleanup, err := buildPipeline(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	processor := worker.NewBatchProcessor(p, concurrency)

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	var results []*worker.AnalyzeResult
	if info.IsDir() {
		results, err = processor.ProcessDir(ctx, target, hint)
	} else {
		results, err = processor.ProcessList(ctx, target, hint)
	}
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no input files found in %s", target)
	}

	renderer := pipeline.NewRenderer(cfg.Output.Dir)
	succeeded, failed := 0, 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", res.Path, res.Error)
			continue
		}
		path, werr := renderer.WriteJSON(res.Result)
		if werr != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", res.Path, werr)
			continue
		}
		succeeded++
		fmt.Printf("OK   %s -> %s (%s, sovereignty %.2f)\n",
			res.Path, path,
			res.Result.Situation.Type,
			res.Result.Sovereignty.Input.OverallScore)
	}

	fmt.Printf("\n%d analyzed, %d failed\n", succeeded, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(results))
	}
	return nil
}
