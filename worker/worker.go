package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/kinetic/entity"
)

// Pool runs submitted tasks on a fixed set of goroutines. Panics inside a task are reported through
// sentry and do not take the worker down with them.
type Pool struct {
	queue chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// NewPool starts a pool with n workers. runtime.NumCPU() workers are started if n is not positive.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.queue {
		run(f)
	}
}

func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to run on one of the workers, blocking while the queue is full. Submit must not be
// called after Close.
func (p *Pool) Submit(f func()) {
	p.queue <- f
}

// TickAll runs fn for every entity passed on the pool and waits until all of them have returned. A
// panicking call counts as done.
func (p *Pool) TickAll(entities []*entity.Entity, fn func(e *entity.Entity)) {
	var wg sync.WaitGroup
	wg.Add(len(entities))
	for _, e := range entities {
		p.Submit(func() {
			defer wg.Done()
			fn(e)
		})
	}
	wg.Wait()
}

// Close stops the workers once the queued tasks have run.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.queue)
	})
	p.wg.Wait()
}
