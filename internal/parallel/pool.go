// Package parallel runs index-range jobs on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines.
//
// Each worker owns a queue and steals from the other queues when its own is
// empty, so one slow chunk does not idle the rest of the pool.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu is held for reading while For submits jobs, so Close cannot
	// strand a job in a queue whose worker has already exited.
	mu sync.RWMutex
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
		default:
			if job := p.steal(id); job != nil {
				job()
				continue
			}
			select {
			case <-p.done:
				drain(own)
				return
			case job := <-own:
				job()
			}
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case job := <-q:
			job()
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// For calls fn over [0, n) split into contiguous, non-overlapping ranges and
// waits for every range to finish. Only the last range may be shorter than
// grain.
//
// If the pool is closed or n fits in a single range, fn runs once on the
// calling goroutine.
func (p *Pool) For(n, grain int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	grain = max(grain, 1)
	if n <= grain {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	chunks := min((n+grain-1)/grain, p.workers*4)
	size := (n + chunks - 1) / chunks

	var wg sync.WaitGroup
	for i, lo := 0, 0; lo < n; i, lo = i+1, lo+size {
		hi := min(lo+size, n)
		wg.Add(1)
		job := func() {
			defer wg.Done()
			fn(lo, hi)
		}
		p.queues[i%p.workers] <- job
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Close stops the workers after running any queued jobs.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
