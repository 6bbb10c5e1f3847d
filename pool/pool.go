package pool

import (
	"sync"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Task is one unit of work. A returned error is logged; it never
// affects other tasks.
type Task func() error

// Pool is a fixed set of workers draining a shared task queue. Workers
// sleep on a condition variable until work arrives or the pool stops;
// Close signals stop, wakes everyone, and joins the workers after the
// queued tasks drain.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   []Task
	stopped bool
	workers sync.WaitGroup
}

func New(size int) *Pool {
	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)
	for i := 0; i < size; i++ {
		p.workers.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.workers.Done()
	for {
		p.mu.Lock()
		for !p.stopped && len(p.tasks) == 0 {
			p.cond.Wait()
		}
		if p.stopped && len(p.tasks) == 0 {
			p.mu.Unlock()
			return
		}
		task := p.tasks[0]
		p.tasks = p.tasks[1:]
		p.mu.Unlock()
		if err := task(); err != nil {
			errors.Logf("ERROR", "task failed: %v", err)
		}
	}
}

// Enqueue submits a task. It fails once Close has been called.
func (p *Pool) Enqueue(task Task) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return errors.Errorf("enqueue on a stopped pool")
	}
	p.tasks = append(p.tasks, task)
	p.mu.Unlock()
	p.cond.Signal()
	return nil
}

// Close stops the pool and waits for every queued task to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.workers.Wait()
}
