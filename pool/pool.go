// ABOUTME: Fixed-size worker pool for parallel batch work
// ABOUTME: Submit-and-wait pattern used by the catalog import scan

// Package pool runs batches of independent tasks across a fixed set of
// worker goroutines.
package pool

import (
	"runtime"
	"sync"
)

// Pool fans submitted tasks out to its workers. Submit and Wait may be
// interleaved across several batches; Close ends the pool for good.
type Pool struct {
	tasks   chan func()
	pending sync.WaitGroup // open tasks in the current batch
	done    sync.WaitGroup // worker goroutine lifetimes
}

// New starts a pool of the given number of workers. Zero or negative
// means one worker per CPU.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &Pool{tasks: make(chan func(), workers)}
	p.done.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.done.Done()
	for task := range p.tasks {
		task()
		p.pending.Done()
	}
}

// Submit queues one task, blocking while all workers are occupied and the
// queue is full.
func (p *Pool) Submit(task func()) {
	p.pending.Add(1)
	p.tasks <- task
}

// Wait blocks until every submitted task has finished.
func (p *Pool) Wait() {
	p.pending.Wait()
}

// Close stops the workers after the queued tasks drain. No Submit may
// follow.
func (p *Pool) Close() {
	close(p.tasks)
	p.done.Wait()
}
