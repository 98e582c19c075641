// Package parallel provides a small closure worker pool for fanning
// independent per-row or per-block image work across CPUs.
package parallel

import (
	"runtime"
	"sync"
)

// Pool runs submitted closures on a fixed set of workers. A pool with a
// single worker runs every closure inline on the caller, so callers never
// need a separate sequential path.
type Pool struct {
	wg      sync.WaitGroup
	work    chan func()
	drained func()
}

// Start launches a pool with numWorkers workers. Any value below 1 means
// one worker per available CPU.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{}
	if numWorkers == 1 {
		return p
	}
	p.work = make(chan func(), numWorkers)
	p.drained = sync.OnceFunc(func() { close(p.work) })
	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for f := range p.work {
				f()
			}
		}()
	}
	return p
}

// Do schedules f on the pool, or runs it inline for a single-worker pool.
func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait closes the queue and blocks until every scheduled closure has run.
// The pool cannot be reused afterwards.
func (p *Pool) Wait() {
	if p.work == nil {
		return
	}
	p.drained()
	p.wg.Wait()
}
