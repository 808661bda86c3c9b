package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/verobrix/verobrix/internal/model"
)

// Analyzer runs one full analysis over raw situation text
type Analyzer interface {
	Analyze(ctx context.Context, input model.AnalysisInput) (*model.AnalysisResult, error)
}

// AnalyzeJob analyzes one input file
type AnalyzeJob struct {
	Path     string
	Hint     model.ContextHint
	Analyzer Analyzer
}

// Execute reads the file and runs the analysis. An empty file is not
// an error; the analyzer returns its neutral default result for it.
func (j *AnalyzeJob) Execute(ctx context.Context) *AnalyzeResult {
	data, err := os.ReadFile(j.Path)
	if err != nil {
		return &AnalyzeResult{Path: j.Path, Error: fmt.Errorf("read input: %w", err)}
	}
	text := strings.TrimSpace(string(data))

	var hint *model.ContextHint
	if j.Hint != (model.ContextHint{}) {
		hint = &j.Hint
	}

	result, err := j.Analyzer.Analyze(ctx, model.AnalysisInput{RawText: text, Hint: hint})
	return &AnalyzeResult{Path: j.Path, Result: result, Error: err}
}

// AnalyzeResult is the outcome for one input file
type AnalyzeResult struct {
	Path   string
	Result *model.AnalysisResult
	Error  error
}

// BatchProcessor analyzes multiple situation files concurrently. Each
// file is an independent session; one failure never stops the batch.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes the given files concurrently. Results are
// returned sorted by path so batch output is stable.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string, hint model.ContextHint) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{
			Path:     path,
			Hint:     hint,
			Analyzer: b.analyzer,
		})
	}

	out := pool.Wait()
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// ProcessDir analyzes every regular .txt and .md file in a directory
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string, hint model.ContextHint) ([]*AnalyzeResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".md":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return b.ProcessPaths(ctx, paths, hint), nil
}

// ProcessList reads input paths from a manifest file, one per line,
// and analyzes them concurrently
func (b *BatchProcessor) ProcessList(ctx context.Context, listPath string, hint model.ContextHint) ([]*AnalyzeResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return b.ProcessPaths(ctx, paths, hint), nil
}

// ReadPathsFromFile reads file paths from a manifest (one per line).
// Empty lines and # comments are skipped, duplicates removed.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return paths, nil
}
