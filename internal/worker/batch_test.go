package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/verobrix/verobrix/internal/model"
)

// MockAnalyzer implements Analyzer
type MockAnalyzer struct {
	ShouldError bool
}

func (m *MockAnalyzer) Analyze(ctx context.Context, input model.AnalysisInput) (*model.AnalysisResult, error) {
	if m.ShouldError {
		return nil, errors.New("analysis error")
	}
	return &model.AnalysisResult{
		SessionID: "test-session",
		Input:     input,
	}, nil
}

func writeInputFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeInputFile(t, dir, "a.txt", "I received a fee demand."),
		writeInputFile(t, dir, "b.txt", "Traffic stop on the highway."),
		writeInputFile(t, dir, "c.txt", "Court summons arrived today."),
	}

	processor := NewBatchProcessor(&MockAnalyzer{}, 2)
	results := processor.ProcessPaths(context.Background(), paths, model.ContextHint{})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Error != nil {
			t.Errorf("unexpected error for %s: %v", res.Path, res.Error)
		}
		if res.Result == nil {
			t.Errorf("expected result for %s", res.Path)
		}
		if i > 0 && results[i-1].Path > res.Path {
			t.Error("results not sorted by path")
		}
	}
}

func TestBatchProcessor_AnalyzerError(t *testing.T) {
	dir := t.TempDir()
	path := writeInputFile(t, dir, "a.txt", "some situation")

	processor := NewBatchProcessor(&MockAnalyzer{ShouldError: true}, 2)
	results := processor.ProcessPaths(context.Background(), []string{path}, model.ContextHint{})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Result != nil {
		t.Error("expected nil result on error")
	}
}

func TestBatchProcessor_EmptyFileAnalyzed(t *testing.T) {
	dir := t.TempDir()
	path := writeInputFile(t, dir, "empty.txt", "   \n")

	processor := NewBatchProcessor(&MockAnalyzer{}, 1)
	results := processor.ProcessPaths(context.Background(), []string{path}, model.ContextHint{})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error != nil {
		t.Errorf("empty file should analyze to defaults, got %v", results[0].Error)
	}
	if results[0].Result == nil {
		t.Fatal("expected a result for the empty file")
	}
	if results[0].Result.Input.RawText != "" {
		t.Errorf("expected empty raw text, got %q", results[0].Result.Input.RawText)
	}
}

func TestBatchProcessor_MissingFile(t *testing.T) {
	processor := NewBatchProcessor(&MockAnalyzer{}, 1)
	results := processor.ProcessPaths(context.Background(),
		[]string{"does-not-exist.txt"}, model.ContextHint{})

	if len(results) != 1 || results[0].Error == nil {
		t.Fatalf("expected read error, got %+v", results)
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	processor := NewBatchProcessor(&MockAnalyzer{}, 2)
	results := processor.ProcessPaths(context.Background(), nil, model.ContextHint{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestProcessDir_FiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	writeInputFile(t, dir, "a.txt", "situation one")
	writeInputFile(t, dir, "b.md", "situation two")
	writeInputFile(t, dir, "skip.yaml", "kind: case_law")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	processor := NewBatchProcessor(&MockAnalyzer{}, 2)
	results, err := processor.ProcessDir(context.Background(), dir, model.ContextHint{})
	if err != nil {
		t.Fatalf("ProcessDir: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	content := `inputs/one.txt
# comment
inputs/two.txt

inputs/one.txt
inputs/three.txt   `

	dir := t.TempDir()
	manifest := writeInputFile(t, dir, "manifest.txt", content)

	paths, err := ReadPathsFromFile(manifest)
	if err != nil {
		t.Fatalf("ReadPathsFromFile failed: %v", err)
	}

	expected := []string{"inputs/one.txt", "inputs/two.txt", "inputs/three.txt"}
	if len(paths) != len(expected) {
		t.Fatalf("expected %d paths, got %d", len(expected), len(paths))
	}
	for i, p := range paths {
		if p != expected[i] {
			t.Errorf("expected %s at index %d, got %s", expected[i], i, p)
		}
	}
}

func TestReadPathsFromFile_NonExistent(t *testing.T) {
	_, err := ReadPathsFromFile("non_existent_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}
