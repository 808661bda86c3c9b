// Package watch runs analyses over files dropped into an intake
// directory. Each settled file becomes one pipeline session.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/verobrix/verobrix/internal/model"
	"github.com/verobrix/verobrix/internal/worker"
)

const (
	defaultSettle = 500 * time.Millisecond
	tickInterval  = 100 * time.Millisecond
)

// ResultFunc receives the outcome for one intake file
type ResultFunc func(path string, result *model.AnalysisResult, err error)

// Watcher analyzes files created or modified in an intake directory.
// Rapid writes to the same file are debounced so a file is analyzed
// once, after it settles.
type Watcher struct {
	watcher  *fsnotify.Watcher
	analyzer worker.Analyzer
	onResult ResultFunc
	logger   *zap.Logger

	dir    string
	settle time.Duration

	mu      sync.Mutex
	pending map[string]time.Time
	running bool

	stopCh chan struct{}
	doneCh chan struct{}
}

// New creates a watcher over the given intake directory. A zero
// settle duration uses the default.
func New(dir string, analyzer worker.Analyzer, onResult ResultFunc, logger *zap.Logger, settle time.Duration) (*Watcher, error) {
	if analyzer == nil {
		return nil, fmt.Errorf("watch: analyzer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if settle <= 0 {
		settle = defaultSettle
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:  fw,
		analyzer: analyzer,
		onResult: onResult,
		logger:   logger,
		dir:      dir,
		settle:   settle,
		pending:  make(map[string]time.Time),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a
// goroutine until Stop or context cancellation.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create intake dir: %w", err)
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch intake dir: %w", err)
	}

	w.logger.Info("watching intake directory", zap.String("dir", w.dir))
	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to drain
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("closing watcher", zap.Error(err))
	}
}

// run is the main event loop
func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))

		case <-ticker.C:
			w.processSettled(ctx)
		}
	}
}

// handleEvent queues an intake file for analysis once it settles
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !isIntakeFile(event.Name) {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	w.logger.Debug("intake event",
		zap.String("path", event.Name),
		zap.String("op", event.Op.String()))

	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
}

// processSettled analyzes every pending file whose last event is
// older than the settle window
func (w *Watcher) processSettled(ctx context.Context) {
	now := time.Now()

	w.mu.Lock()
	var ready []string
	for path, last := range w.pending {
		if now.Sub(last) >= w.settle {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, path := range ready {
		w.analyzeFile(ctx, path)
	}
}

func (w *Watcher) analyzeFile(ctx context.Context, path string) {
	job := &worker.AnalyzeJob{Path: path, Analyzer: w.analyzer}
	res := job.Execute(ctx)

	if res.Error != nil {
		w.logger.Warn("intake analysis failed",
			zap.String("path", path),
			zap.Error(res.Error))
	} else {
		w.logger.Info("intake file analyzed",
			zap.String("path", path),
			zap.String("session_id", res.Result.SessionID))
	}

	if w.onResult != nil {
		w.onResult(path, res.Result, res.Error)
	}
}

// isIntakeFile reports whether the path looks like situation text
func isIntakeFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return true
	}
	return false
}
