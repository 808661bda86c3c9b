package model

import "time"

// Config is the full runtime configuration, populated from defaults,
// the config file, VEROBRIX_* environment variables, and CLI flags.
type Config struct {
	Corpus      CorpusConfig      `yaml:"corpus" mapstructure:"corpus"`
	Ledger      LedgerConfig      `yaml:"ledger" mapstructure:"ledger"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// CorpusConfig locates the legal-authority record files
type CorpusConfig struct {
	// Dir holds case_law.yaml, statutes.yaml, constitutional.yaml,
	// and affidavits.yaml. Missing files degrade to built-in records.
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// LedgerConfig controls the provenance ledger
type LedgerConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// OutputConfig controls result rendering
type OutputConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// CacheConfig controls the authority-search report cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig bounds parallel work in batch mode
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// LLMConfig configures the optional plain-language summarizer
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"`
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Dir: "corpus",
		},
		Ledger: LedgerConfig{
			Enabled: true,
			Path:    "logs/provenance.jsonl",
		},
		Output: OutputConfig{
			Dir: "output",
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".verobrix-cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 1000,
		},
	}
}
