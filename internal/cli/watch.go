package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/verobrix/verobrix/internal/model"
	"github.com/verobrix/verobrix/internal/pipeline"
	"github.com/verobrix/verobrix/internal/watch"
)

var watchOutputDir string

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch an intake directory and analyze new files",
	Long: `Watch monitors a directory and analyzes every .txt or .md file
created or modified in it. Each file becomes its own session and its
result is written to the output directory. Runs until interrupted.

Example:
  verobrix watch ./intake
  verobrix watch ./intake --output-dir ./results`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchOutputDir, "output-dir", "", "result output directory (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if watchOutputDir != "" {
		cfg.Output.Dir = watchOutputDir
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	p, cleanup, err := buildPipeline(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	renderer := pipeline.NewRenderer(cfg.Output.Dir)
	onResult := func(path string, result *model.AnalysisResult, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			return
		}
		out, werr := renderer.WriteJSON(result)
		if werr != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, werr)
			return
		}
		fmt.Printf("OK   %s -> %s (%s, sovereignty %.2f)\n",
			path, out, result.Situation.Type, result.Sovereignty.Input.OverallScore)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := watch.New(dir, p, onResult, logger, 0)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Fprintf(os.Stderr, "Watching %s, press Ctrl-C to stop\n", dir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	fmt.Fprintln(os.Stderr, "Stopping")
	return nil
}
