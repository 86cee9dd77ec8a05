package verify

import (
	"runtime"
	"sync"
)

// rowTask asks a worker to integrate one polar row of histogram bins
type rowTask struct {
	Row int
}

// rowResult carries the integrated bin values for one polar row
type rowResult struct {
	Row  int
	Bins []float64
}

// integrationPool distributes expected-frequency integration across workers.
// Rows are independent, so workers never share state; determinism comes from
// placing each result by its row index.
type integrationPool struct {
	taskQueue   chan rowTask
	resultQueue chan rowResult
	numWorkers  int
	wg          sync.WaitGroup
	integrate   func(row int) []float64
}

// newIntegrationPool creates a pool with the specified number of workers
func newIntegrationPool(numWorkers, rows int, integrate func(row int) []float64) *integrationPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &integrationPool{
		taskQueue:   make(chan rowTask, rows),
		resultQueue: make(chan rowResult, rows),
		numWorkers:  numWorkers,
		integrate:   integrate,
	}
}

// Start begins all workers
func (p *integrationPool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

// Stop signals that no more tasks are coming and waits for the workers
func (p *integrationPool) Stop() {
	close(p.taskQueue)
	p.wg.Wait()
	close(p.resultQueue)
}

// SubmitTask queues one row for integration
func (p *integrationPool) SubmitTask(task rowTask) {
	p.taskQueue <- task
}

// GetResult retrieves a completed row
func (p *integrationPool) GetResult() (rowResult, bool) {
	result, ok := <-p.resultQueue
	return result, ok
}

// run is the main worker loop
func (p *integrationPool) run() {
	defer p.wg.Done()

	for task := range p.taskQueue {
		p.resultQueue <- rowResult{
			Row:  task.Row,
			Bins: p.integrate(task.Row),
		}
	}
}
