package worker

import (
	"context"
	"sync"
)

// Pool fans analysis jobs out over a fixed number of goroutines. Each
// job is one situation file; results arrive in completion order, so
// callers that need stable output sort afterward.
type Pool struct {
	workers    int
	jobs       chan *AnalyzeJob
	results    chan *AnalyzeResult
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates an analysis pool. A non-positive worker count runs
// everything on a single goroutine.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:    workers,
		jobs:       make(chan *AnalyzeJob, workers*2),
		results:    make(chan *AnalyzeResult, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start launches the analysis goroutines
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.analyzeLoop()
	}
}

func (p *Pool) analyzeLoop() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues one analysis job. Submissions after Shutdown are
// silently dropped.
func (p *Pool) Submit(job *AnalyzeJob) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobs <- job:
	}
}

// Wait closes the queue, drains all pending jobs, and returns their
// results in completion order
func (p *Pool) Wait() []*AnalyzeResult {
	close(p.jobs)

	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []*AnalyzeResult
	for result := range p.results {
		results = append(results, result)
	}

	return results
}

// Shutdown cancels in-flight analyses and stops the pool immediately
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
