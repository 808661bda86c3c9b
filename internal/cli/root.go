// Package cli wires the cobra command tree. Commands stay thin: flag
// parsing and wiring here, behavior in the pipeline and its stages.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/verobrix/verobrix/internal/cache"
	"github.com/verobrix/verobrix/internal/corpus"
	"github.com/verobrix/verobrix/internal/llm"
	"github.com/verobrix/verobrix/internal/model"
	"github.com/verobrix/verobrix/internal/pipeline"
	"github.com/verobrix/verobrix/internal/provenance"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "verobrix",
	Short: "VeroBrix - Sovereignty-oriented legal situation analysis",
	Long: `VeroBrix analyzes legal situations described in plain text.

It classifies the situation, extracts clauses and contradictions,
scores the language on a sovereignty scale, proposes a remedy, and
aggregates practical recommendations. An offline corpus of case law,
statutes, and constitutional provisions backs authority searches.

All analysis is deterministic and rule-based. VeroBrix is not a
lawyer and its output is not legal advice.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("verobrix v" + pipeline.Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.verobrix/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(filepath.Join(home, ".verobrix"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("VEROBRIX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults, config file, and environment
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the operational logger
func newLogger() *zap.Logger {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// buildPipeline assembles a pipeline from configuration. The returned
// cleanup closes the ledger and must run before exit.
func buildPipeline(cfg *model.Config, logger *zap.Logger) (*pipeline.Pipeline, func(), error) {
	cleanup := func() {}

	var opts []pipeline.Option

	if cfg.Ledger.Enabled {
		ledger, err := provenance.NewFileLedger(cfg.Ledger.Path, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open provenance ledger: %w", err)
		}
		opts = append(opts, pipeline.WithLedger(ledger))
		cleanup = func() { _ = ledger.Close() }
	}

	if cfg.Cache.Enabled {
		layered := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		opts = append(opts, pipeline.WithReportCache(cache.NewReportCache(layered, cfg.Cache.MemoryTTL)))
	}

	if cfg.LLM.Provider != "" {
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.LLM.BaseURL == "" && cfg.LLM.Provider == "ollama" {
			cfg.LLM.BaseURL = os.Getenv("OLLAMA_BASE_URL")
		}
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			logger.Warn("llm provider unavailable, summaries disabled", zap.Error(err))
		} else if provider != nil {
			opts = append(opts, pipeline.WithProvider(provider))
		}
	}

	store := corpus.NewStore(cfg.Corpus.Dir, logger)
	p, err := pipeline.NewPipeline(cfg, store, logger, opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return p, cleanup, nil
}
