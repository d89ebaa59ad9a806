// Copyright 2026 The volley Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volley

import "sync"

// An Executor runs units of blocking work on behalf of the network
// core. The core submits the stream-to-bytes copy of a response body
// to its Executor rather than running it on the goroutine that
// delivered the transport callback.
//
// Execute must not block the submitting goroutine. Implementations
// must be safe for concurrent use by multiple goroutines.
type Executor interface {
	Execute(task func())
}

// The ExecutorFunc type is an adapter to allow the use of ordinary
// functions as Executors.
type ExecutorFunc func(task func())

// Execute calls f(task).
func (f ExecutorFunc) Execute(task func()) {
	f(task)
}

// Goroutines is an Executor that runs every task on its own goroutine.
// It never queues, so concurrent blocking copies are unbounded.
var Goroutines Executor = ExecutorFunc(func(task func()) {
	go task()
})

// A WorkerPool is an Executor backed by a fixed number of worker
// goroutines and an unbounded queue. Submitting never blocks; tasks
// wait in the queue until a worker frees up. Construct with
// NewWorkerPool.
type WorkerPool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
}

var _ Executor = (*WorkerPool)(nil)

// NewWorkerPool creates a WorkerPool with the given number of workers.
// The worker count must be at least one.
func NewWorkerPool(workers int) *WorkerPool {
	if workers < 1 {
		panic("volley: worker pool needs at least one worker")
	}
	p := &WorkerPool{}
	p.cond = sync.NewCond(&p.mu)
	for i := 0; i < workers; i++ {
		go p.work()
	}
	return p
}

// Execute queues task for execution by the pool's workers.
func (p *WorkerPool) Execute(task func()) {
	if task == nil {
		panic("volley: nil task")
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic("volley: execute on closed worker pool")
	}
	p.queue = append(p.queue, task)
	p.mu.Unlock()
	p.cond.Signal()
}

// Close stops the pool's workers once the queue drains. Tasks already
// queued still run; submitting after Close panics.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
}

func (p *WorkerPool) work() {
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()
		task()
	}
}
